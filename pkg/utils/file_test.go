package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")

	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0644))
	require.NoError(t, WriteFile(path, []byte("new"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileRelativePath(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, WriteFile("rel.txt", []byte("{};"), 0644))
	assert.True(t, FileExists("rel.txt"))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "absent")))
}

func TestWriteFileThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "real.txt")
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.WriteFile(dest, []byte("old"), 0644))
	require.NoError(t, os.Symlink(dest, link))

	require.NoError(t, WriteFile(link, []byte("{3, 3};"), 0644))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "link should still be a symlink")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "{3, 3};", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWriteFileDanglingSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink("target.txt", link))

	require.NoError(t, WriteFile(link, []byte("{};"), 0644))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	data, err := os.ReadFile(filepath.Join(dir, "target.txt"))
	require.NoError(t, err)
	assert.Equal(t, "{};", string(data))
}
