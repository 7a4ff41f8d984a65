package memory_test

import (
	"testing"

	"github.com/aretw0/cascade/pkg/adapters/memory"
	contract "github.com/aretw0/cascade/pkg/ports/tests"
)

func TestSource_Contract(t *testing.T) {
	data := map[string]map[string]any{
		"acl/editor": {"level": "write", "type": "group", "name": "editors"},
		"path/about": {"path": "/about", "siteName": "www"},
	}

	src := memory.NewSource(data)

	contract.PayloadSourceContractTest(t, src, data)
}
