package ports

import (
	"context"

	"github.com/aretw0/cascade/pkg/domain"
)

// Transport is the remote web-service collaborator.
// Implementations perform the actual network calls; the conversion layer
// only reads the mode flags and resolves asset references through it.
type Transport interface {
	// IsSoap reports whether payloads are exchanged in the SOAP dialect.
	IsSoap() bool
	// IsRest reports whether payloads are exchanged in the REST dialect.
	IsRest() bool
	// ResolveAsset fetches the asset identified by id or path.
	// siteName is required when idOrPath is a path, and ignored otherwise.
	ResolveAsset(ctx context.Context, assetType, idOrPath, siteName string) (domain.Asset, error)
}
