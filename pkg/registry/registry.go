package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/cascade/pkg/wire"
)

// Encoder is the export half of a decoded value object.
type Encoder interface {
	Encode(mode wire.Mode) any
}

// DecodeFunc builds a value object from a raw wire value.
type DecodeFunc func(raw any) (Encoder, error)

// Registry maps property kinds (e.g. "possibleValue") to their decoders.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]DecodeFunc
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds: make(map[string]DecodeFunc),
	}
}

// Register adds a decoder to the registry.
// If a decoder with the same kind exists, it is overwritten.
func (r *Registry) Register(kind string, fn DecodeFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[kind] = fn
}

// Decode looks up a decoder by kind and runs it.
// Returns an error if the kind is not registered.
func (r *Registry) Decode(kind string, raw any) (Encoder, error) {
	r.mu.RLock()
	fn, ok := r.kinds[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown property kind: %s", kind)
	}

	return fn(raw)
}

// Convert decodes raw as kind and re-exports it in the given mode.
func (r *Registry) Convert(kind string, raw any, mode wire.Mode) (any, error) {
	enc, err := r.Decode(kind, raw)
	if err != nil {
		return nil, err
	}
	return enc.Encode(mode), nil
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.kinds))
	for k := range r.kinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
