package registry_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/aretw0/cascade/pkg/registry"
	"github.com/aretw0/cascade/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct{ raw any }

func (e echo) Encode(mode wire.Mode) any {
	return map[string]any{"mode": mode.String(), "raw": e.raw}
}

func TestRegistry(t *testing.T) {
	reg := registry.NewRegistry()

	reg.Register("echo", func(raw any) (registry.Encoder, error) {
		return echo{raw: raw}, nil
	})
	reg.Register("broken", func(any) (registry.Encoder, error) {
		return nil, errors.New("boom")
	})

	t.Run("Convert", func(t *testing.T) {
		out, err := reg.Convert("echo", "x", wire.REST)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"mode": "rest", "raw": "x"}, out)
	})

	t.Run("DecoderError", func(t *testing.T) {
		_, err := reg.Convert("broken", nil, wire.SOAP)
		assert.EqualError(t, err, "boom")
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := reg.Decode("missing", nil)
		assert.ErrorContains(t, err, "unknown property kind: missing")
	})

	t.Run("Overwrite", func(t *testing.T) {
		reg.Register("broken", func(raw any) (registry.Encoder, error) {
			return echo{raw: "fixed"}, nil
		})
		_, err := reg.Decode("broken", nil)
		assert.NoError(t, err)
	})

	assert.Equal(t, []string{"broken", "echo"}, reg.Kinds())
}

func TestRegistry_Concurrent(t *testing.T) {
	reg := registry.NewRegistry()
	fn := func(raw any) (registry.Encoder, error) { return echo{raw: raw}, nil }

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.Register("echo", fn)
		}()
		go func() {
			defer wg.Done()
			_, _ = reg.Decode("echo", nil)
			_ = reg.Kinds()
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"echo"}, reg.Kinds())
}
