package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/wire"
)

// Transport implements ports.Transport with a fixed dialect and an
// in-memory asset registry. Safe for concurrent use.
type Transport struct {
	mode   wire.Mode
	mu     sync.RWMutex
	byID   map[string]domain.Asset
	byPath map[string]domain.Asset
}

// NewTransport creates a transport speaking mode, preloaded with assets.
func NewTransport(mode wire.Mode, assets ...domain.Asset) (*Transport, error) {
	if !mode.Valid() {
		return nil, domain.Unacceptable("Transport", "mode", mode.String(), "expected soap or rest")
	}
	t := &Transport{
		mode:   mode,
		byID:   make(map[string]domain.Asset),
		byPath: make(map[string]domain.Asset),
	}
	for _, a := range assets {
		if err := t.Add(a); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Add registers an asset. It needs a type and at least an id or a path.
func (t *Transport) Add(a domain.Asset) error {
	if a.Type == "" {
		return domain.Empty("Asset", "type")
	}
	if a.ID == "" && a.Path == "" {
		return domain.Empty("Asset", "id")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if a.ID != "" {
		t.byID[idKey(a.Type, a.ID)] = a
	}
	if a.Path != "" {
		t.byPath[pathKey(a.Type, a.Path, a.SiteName)] = a
	}
	return nil
}

func (t *Transport) IsSoap() bool { return t.mode == wire.SOAP }
func (t *Transport) IsRest() bool { return t.mode == wire.REST }

// ResolveAsset looks the asset up by id first, then by path within siteName.
func (t *Transport) ResolveAsset(ctx context.Context, assetType, idOrPath, siteName string) (domain.Asset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Asset{}, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if a, ok := t.byID[idKey(assetType, idOrPath)]; ok {
		return a, nil
	}
	if a, ok := t.byPath[pathKey(assetType, idOrPath, siteName)]; ok {
		return a, nil
	}
	return domain.Asset{}, fmt.Errorf("%w: %s %s", domain.ErrAssetNotFound, assetType, idOrPath)
}

func idKey(assetType, id string) string {
	return assetType + "\x00" + id
}

func pathKey(assetType, path, siteName string) string {
	return assetType + "\x00" + siteName + "\x00" + path
}
