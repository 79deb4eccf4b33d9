package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile creates name inside dir (a fresh temp dir when dir is empty) with
// the given content and returns its absolute path.
// It fails the test immediately on error.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	if dir == "" {
		dir = t.TempDir()
	}

	absPath, err := filepath.Abs(filepath.Join(dir, name))
	require.NoError(t, err, "Failed to get absolute path")

	require.NoError(t, os.WriteFile(absPath, []byte(content), 0644), "Failed to write %s", name)
	return absPath
}
