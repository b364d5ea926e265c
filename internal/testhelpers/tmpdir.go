package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TmpDir returns a temporary directory with symlinks evaluated
func TmpDir(tb testing.TB) string {
	tb.Helper()

	// On some systems `/tmp` can be a symlink
	tmpDir, err := filepath.EvalSymlinks(tb.TempDir())
	require.NoError(tb, err)

	return tmpDir
}

// WriteFiles creates files below dir, keyed by slash separated relative name
func WriteFiles(tb testing.TB, dir string, files map[string]string) {
	tb.Helper()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))

		require.NoError(tb, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(tb, os.WriteFile(path, []byte(content), 0644))
	}
}
