package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
)

// FixtureMetadata is the envelope header of a stored payload fixture.
// It uses "mapstructure" tags to match the JSON/YAML keys.
type FixtureMetadata struct {
	Kind string `json:"kind" mapstructure:"kind"`
}

// Source adapts a Loam repository to the ports.PayloadSource interface.
// Each document is a fixture envelope: {"kind": ..., "payload": ...}.
type Source struct {
	repo  core.Repository
	typed *loam.TypedRepository[FixtureMetadata]
}

// New wraps an existing repository.
func New(repo core.Repository) *Source {
	return &Source{
		repo:  repo,
		typed: loam.NewTypedRepository[FixtureMetadata](repo),
	}
}

// Open initializes a read-only Loam repository at dir.
// Strict mode keeps numbers as json.Number instead of float64.
func Open(dir string) (*Source, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(repo), nil
}

// Payload returns the full metadata of the fixture document stored under id.
func (s *Source) Payload(ctx context.Context, id string) (map[string]any, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}
	if doc.Metadata == nil {
		return map[string]any{}, nil
	}
	return map[string]any(doc.Metadata), nil
}

// List returns every fixture ID without extension, sorted.
func (s *Source) List(ctx context.Context) ([]string, error) {
	docs, err := s.typed.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		id := trimExtension(doc.ID)
		if existing, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existing, doc.ID)
		}
		seen[id] = doc.ID
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
