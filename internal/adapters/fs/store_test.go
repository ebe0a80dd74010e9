package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rehost/internal/adapters/fs"
	"go.trai.ch/rehost/internal/core/domain"
)

func TestStore_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("Host a\n  HostName 1.2.3.4\n"), 0o600))

	got, err := fs.NewStore().Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Host a\n  HostName 1.2.3.4\n", got)
}

func TestStore_ReadMissing(t *testing.T) {
	_, err := fs.NewStore().Read(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestStore_ReadDirectory(t *testing.T) {
	_, err := fs.NewStore().Read(t.TempDir())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrConfigNotFound)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}

func TestStore_WriteKeepsMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

	require.NoError(t, fs.NewStore().Write(path, "new\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestStore_WriteFollowsSymlink(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "dotfiles-ssh-config")
	link := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(real, []byte("old\n"), 0o644))
	require.NoError(t, os.Symlink(real, link))

	require.NoError(t, fs.NewStore().Write(link, "new\n"))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "symlink must survive the write")

	data, err := os.ReadFile(real)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestStore_WriteNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")

	require.NoError(t, fs.NewStore().Write(path, "Host a\n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())
}

func TestStore_WriteMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config")

	err := fs.NewStore().Write(path, "x\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigWriteFailed.Error())
}
