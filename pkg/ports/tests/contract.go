package tests

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/ports"
)

// TransportContractTest is a reusable test suite that verifies if an adapter complies with ports.Transport.
// Every asset in setup must already be resolvable through the transport.
func TransportContractTest(t *testing.T, transport ports.Transport, setup []domain.Asset) {
	t.Helper()
	ctx := context.Background()

	t.Run("Mode_Exclusive", func(t *testing.T) {
		if transport.IsSoap() == transport.IsRest() {
			t.Errorf("transport must speak exactly one dialect (soap=%v rest=%v)", transport.IsSoap(), transport.IsRest())
		}
	})

	t.Run("ResolveAsset_ByID", func(t *testing.T) {
		for _, want := range setup {
			if want.ID == "" {
				continue
			}
			got, err := transport.ResolveAsset(ctx, want.Type, want.ID, "")
			if err != nil {
				t.Fatalf("unexpected error resolving %s %s: %v", want.Type, want.ID, err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("asset mismatch for %s. got %+v, want %+v", want.ID, got, want)
			}
		}
	})

	t.Run("ResolveAsset_ByPath", func(t *testing.T) {
		for _, want := range setup {
			if want.Path == "" {
				continue
			}
			got, err := transport.ResolveAsset(ctx, want.Type, want.Path, want.SiteName)
			if err != nil {
				t.Fatalf("unexpected error resolving %s %s: %v", want.Type, want.Path, err)
			}
			if got.Path != want.Path {
				t.Errorf("path mismatch. got %q, want %q", got.Path, want.Path)
			}
		}
	})

	t.Run("ResolveAsset_NotFound", func(t *testing.T) {
		_, err := transport.ResolveAsset(ctx, domain.AssetTypePage, "non-existent-asset", "")
		if !errors.Is(err, domain.ErrAssetNotFound) {
			t.Errorf("expected ErrAssetNotFound, got %v", err)
		}
	})

	t.Run("ResolveAsset_WrongType", func(t *testing.T) {
		for _, want := range setup {
			if want.ID == "" || want.Type == domain.AssetTypeFormat {
				continue
			}
			if _, err := transport.ResolveAsset(ctx, domain.AssetTypeFormat, want.ID, ""); err == nil {
				t.Errorf("expected error resolving %s as %s", want.ID, domain.AssetTypeFormat)
			}
		}
	})
}

// PayloadSourceContractTest is a reusable test suite that verifies if an adapter complies with ports.PayloadSource.
func PayloadSourceContractTest(t *testing.T, source ports.PayloadSource, setupData map[string]map[string]any) {
	t.Helper()
	ctx := context.Background()

	t.Run("Payload_Success", func(t *testing.T) {
		for id, expected := range setupData {
			got, err := source.Payload(ctx, id)
			if err != nil {
				t.Fatalf("unexpected error getting payload %s: %v", id, err)
			}
			for key, value := range expected {
				if !reflect.DeepEqual(got[key], value) {
					t.Errorf("payload %s key %s mismatch. got %#v, want %#v", id, key, got[key], value)
				}
			}
		}
	})

	t.Run("Payload_NotFound", func(t *testing.T) {
		if _, err := source.Payload(ctx, "non-existent-payload"); err == nil {
			t.Error("expected error for non-existent payload, got nil")
		}
	})

	t.Run("List", func(t *testing.T) {
		ids, err := source.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error listing payloads: %v", err)
		}

		if len(ids) != len(setupData) {
			t.Errorf("expected %d payloads, got %d", len(setupData), len(ids))
		}

		lookup := make(map[string]bool)
		for _, id := range ids {
			lookup[id] = true
		}

		for id := range setupData {
			if !lookup[id] {
				t.Errorf("payload %s missing from list", id)
			}
		}
	})
}
