package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFixtures creates a temporary directory holding the given files
// (relative path -> content) and returns its absolute path.
// It fails the test immediately on error.
func WriteFixtures(t *testing.T, files map[string]string) string {
	t.Helper()

	// t.TempDir usually returns an absolute path; Loam prefers one.
	dir, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "Failed to create fixture dir")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write fixture %s", name)
	}

	return dir
}
