package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GoldenPath returns the location of a golden transcript in testdata/.
func GoldenPath(name string) string {
	return filepath.Join("testdata", name+".golden")
}

// Golden compares a session transcript against testdata/<name>.golden.
// Setting GOLDEN_UPDATE rewrites the file instead of comparing.
func Golden(t *testing.T, name string, got string) {
	t.Helper()

	path := GoldenPath(name)
	if os.Getenv("GOLDEN_UPDATE") != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(got), 0o644))
		return
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err, "reading golden file %s", path)
	assert.Equal(t, string(want), got, "transcript mismatch for %s", name)
}
