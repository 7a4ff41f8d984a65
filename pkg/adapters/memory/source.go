package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Source implements ports.PayloadSource using an in-memory map.
type Source struct {
	mu       sync.RWMutex
	payloads map[string]map[string]any
}

// NewSource creates a source holding the given payloads by ID.
func NewSource(payloads map[string]map[string]any) *Source {
	data := make(map[string]map[string]any, len(payloads))
	for k, v := range payloads {
		data[k] = v
	}
	return &Source{payloads: data}
}

// Put stores or replaces a payload.
func (s *Source) Put(id string, payload map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads[id] = payload
}

// Payload returns the payload stored under id.
func (s *Source) Payload(ctx context.Context, id string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.payloads[id]
	if !ok {
		return nil, fmt.Errorf("payload not found: %s", id)
	}
	return p, nil
}

// List returns all payload IDs.
func (s *Source) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.payloads))
	for k := range s.payloads {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
