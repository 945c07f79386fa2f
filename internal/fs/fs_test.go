package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	dir := filepath.Join(tmp, "subdir")
	assert.NoError(t, lfs.MkdirAll(dir, 0o755))

	fpath := filepath.Join(dir, "primes.txt")
	f, err := lfs.OpenFile(fpath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	require.NoError(t, err)
	assert.Equal(t, fpath, f.Name())

	_, err = f.Write([]byte("2\n3\n"))
	assert.NoError(t, err)
	assert.NoError(t, f.Sync())
	assert.NoError(t, f.Close())

	_, err = lfs.OpenFile(fpath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	assert.ErrorIs(t, err, os.ErrExist)

	newPath := filepath.Join(dir, "renamed.txt")
	assert.NoError(t, lfs.Rename(fpath, newPath))
	data, err := os.ReadFile(newPath)
	require.NoError(t, err)
	assert.Equal(t, "2\n3\n", string(data))

	assert.NoError(t, lfs.Remove(newPath))
	_, err = os.Stat(newPath)
	assert.True(t, os.IsNotExist(err))
}

func TestFaultyFS_FailAfterBytes(t *testing.T) {
	tmp := t.TempDir()
	ffs := NewFaultyFS(nil)
	ffs.AddRule("faulty", Fault{FailAfterBytes: 5})

	f, err := ffs.OpenFile(filepath.Join(tmp, "faulty.txt"), os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)

	n, err := f.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = f.Write([]byte("!"))
	assert.ErrorIs(t, err, ErrInjected)
	assert.Equal(t, 0, n)
	assert.Equal(t, int64(5), ffs.Written())
	assert.NoError(t, f.Close())

	// Files not matching a rule are unaffected.
	g, err := ffs.OpenFile(filepath.Join(tmp, "healthy.txt"), os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = g.Write([]byte("hello world"))
	assert.NoError(t, err)
	assert.NoError(t, g.Close())
}

func TestFaultyFS_SyncCloseRename(t *testing.T) {
	tmp := t.TempDir()
	errDisk := errors.New("disk gone")

	ffs := NewFaultyFS(LocalFS{})
	ffs.AddRule("sync", Fault{FailAfterBytes: -1, FailOnSync: true, Err: errDisk})
	ffs.AddRule("close", Fault{FailAfterBytes: -1, FailOnClose: true})
	ffs.AddRule("rename", Fault{FailAfterBytes: -1, FailOnRename: true})

	f, err := ffs.OpenFile(filepath.Join(tmp, "sync.txt"), os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	assert.ErrorIs(t, f.Sync(), errDisk)
	assert.NoError(t, f.Close())

	g, err := ffs.OpenFile(filepath.Join(tmp, "close.txt"), os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	assert.NoError(t, g.Sync())
	assert.ErrorIs(t, g.Close(), ErrInjected)

	src := filepath.Join(tmp, "sync.txt")
	assert.ErrorIs(t, ffs.Rename(src, filepath.Join(tmp, "rename.txt")), ErrInjected)
	assert.NoError(t, ffs.Rename(src, filepath.Join(tmp, "moved.txt")))

	require.NoError(t, ffs.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755))
	assert.NoError(t, ffs.Remove(filepath.Join(tmp, "moved.txt")))
}
