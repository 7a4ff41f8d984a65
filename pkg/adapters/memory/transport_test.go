package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/cascade/pkg/adapters/memory"
	"github.com/aretw0/cascade/pkg/domain"
	contract "github.com/aretw0/cascade/pkg/ports/tests"
	"github.com/aretw0/cascade/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransport_Contract(t *testing.T) {
	assets := []domain.Asset{
		{ID: "abc123", Type: domain.AssetTypePage, Path: "/about", SiteName: "www"},
		{ID: "def456", Type: domain.AssetTypeBlock, Path: "/blocks/footer", SiteName: "www"},
	}

	tr, err := memory.NewTransport(wire.REST, assets...)
	require.NoError(t, err)

	contract.TransportContractTest(t, tr, assets)
}

func TestTransport_Modes(t *testing.T) {
	soap, err := memory.NewTransport(wire.SOAP)
	require.NoError(t, err)
	assert.True(t, soap.IsSoap())
	assert.False(t, soap.IsRest())

	rest, err := memory.NewTransport(wire.REST)
	require.NoError(t, err)
	assert.True(t, rest.IsRest())

	_, err = memory.NewTransport(wire.Mode(0))
	assert.ErrorIs(t, err, domain.ErrUnacceptableValue)
}

func TestTransport_AddValidation(t *testing.T) {
	tr, err := memory.NewTransport(wire.SOAP)
	require.NoError(t, err)

	assert.ErrorIs(t, tr.Add(domain.Asset{ID: "x"}), domain.ErrEmptyValue)
	assert.ErrorIs(t, tr.Add(domain.Asset{Type: domain.AssetTypeFile}), domain.ErrEmptyValue)
}

func TestTransport_SiteScopedPaths(t *testing.T) {
	tr, err := memory.NewTransport(wire.SOAP,
		domain.Asset{Type: domain.AssetTypePage, Path: "/index", SiteName: "a"},
	)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = tr.ResolveAsset(ctx, domain.AssetTypePage, "/index", "a")
	assert.NoError(t, err)

	_, err = tr.ResolveAsset(ctx, domain.AssetTypePage, "/index", "b")
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestTransport_CanceledContext(t *testing.T) {
	tr, err := memory.NewTransport(wire.SOAP, domain.Asset{ID: "1", Type: domain.AssetTypeFile})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tr.ResolveAsset(ctx, domain.AssetTypeFile, "1", "")
	assert.ErrorIs(t, err, context.Canceled)
}
