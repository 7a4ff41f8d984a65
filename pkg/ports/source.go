package ports

import "context"

// PayloadSource retrieves raw wire payloads by ID.
// This allows fixtures and captured responses to live in any backend (Loam, FS, Memory).
type PayloadSource interface {
	// Payload returns the decoded key/value payload stored under id.
	Payload(ctx context.Context, id string) (map[string]any, error)

	// List returns the IDs of every payload available, in deterministic order.
	List(ctx context.Context) ([]string, error)
}
