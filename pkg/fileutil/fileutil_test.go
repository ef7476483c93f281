//go:build !integration

package fileutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.md")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.md")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.md")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(path))
	assert.False(t, DirExists(filepath.Join(dir, "missing")))
}

func TestRoot_Exists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "agents"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "agents", "ops.md"), []byte("x"), 0o644))

	root := NewRoot(dir)
	assert.True(t, root.Exists("agents/ops.md"))
	assert.True(t, root.Exists("agents"), "directories count as existing")
	assert.False(t, root.Exists("agents/missing.md"))
}

func TestRoot_ReadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ops.md"), []byte("---\ndescription: x\n---\n"), 0o644))

	root := NewRoot(dir)
	content, err := root.ReadFile("ops.md")
	require.NoError(t, err)
	assert.Equal(t, "---\ndescription: x\n---\n", content)
}

func TestRoot_ReadFileMissing(t *testing.T) {
	root := NewRoot(t.TempDir())
	_, err := root.ReadFile("missing.md")
	assert.Error(t, err)
}

func TestRoot_ReadFileUnreadable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced the same way on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores permission bits")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "locked.md")
	require.NoError(t, os.WriteFile(path, []byte("secret"), 0o000))

	root := NewRoot(dir)
	assert.True(t, root.Exists("locked.md"), "unreadable files still exist")

	_, err := root.ReadFile("locked.md")
	assert.Error(t, err, "read failure must surface as an error, not a crash")
}

func TestRoot_Resolve(t *testing.T) {
	root := NewRoot("/repo")
	assert.Equal(t, filepath.Join("/repo", "agents", "ops.md"), root.Resolve("agents/ops.md"))
}
