package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectFilesByExtension_WalksDirectories(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.hcl"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "nested", "b.hcl"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "ignored.txt"), nil, 0o644))

	files, err := CollectFilesByExtension(".hcl", tmpDir)
	require.NoError(t, err)
	require.Len(t, files, 2)
}

func TestCollectFilesByExtension_SingleFileAndDedupe(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "profile.hcl")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	files, err := CollectFilesByExtension(".hcl", file, file, tmpDir)
	require.NoError(t, err)
	require.Equal(t, []string{file}, files)
}

func TestCollectFilesByExtension_MissingPathIsSkipped(t *testing.T) {
	t.Parallel()

	files, err := CollectFilesByExtension(".hcl", filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestResolveUnder(t *testing.T) {
	t.Parallel()

	require.Equal(t, filepath.Join("/base", "venv"), ResolveUnder("/base", "venv"))
	require.Equal(t, "/abs/venv", ResolveUnder("/base", "/abs/venv"))
	require.Equal(t, "", ResolveUnder("/base", ""))
}
