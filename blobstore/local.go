package blobstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"

	"github.com/hupe1980/primesieve/internal/fs"
)

var tmpSeq atomic.Uint64

// LocalStore implements BlobStore using the local file system.
//
// Blobs are written to a temporary file next to their final path and
// renamed into place on Close.
type LocalStore struct {
	root string
	fs   fs.FileSystem
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return NewLocalStoreFS(root, fs.Default)
}

// NewLocalStoreFS creates a LocalStore on top of fsys.
func NewLocalStoreFS(root string, fsys fs.FileSystem) *LocalStore {
	if fsys == nil {
		fsys = fs.Default
	}
	return &LocalStore{root: root, fs: fsys}
}

// Create creates a blob for streaming writes. Missing parent directories are created.
func (s *LocalStore) Create(_ context.Context, name string) (WritableBlob, error) {
	path := filepath.Join(s.root, name)
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	prefix := filepath.Join(dir, "."+filepath.Base(path)+".tmp-"+strconv.Itoa(os.Getpid())+"-")
	for range 10 {
		tmp := prefix + strconv.FormatUint(tmpSeq.Add(1), 10)
		f, err := s.fs.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &localWritableBlob{fs: s.fs, f: f, path: path}, nil
	}
	return nil, &os.PathError{Op: "createtemp", Path: prefix + "*", Err: os.ErrExist}
}

// Put writes a blob atomically.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	return put(ctx, s, name, data)
}

// Delete removes a blob.
func (s *LocalStore) Delete(_ context.Context, name string) error {
	err := s.fs.Remove(filepath.Join(s.root, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

type localWritableBlob struct {
	fs       fs.FileSystem
	f        fs.File
	path     string
	finished atomic.Bool
}

func (b *localWritableBlob) Write(p []byte) (int, error) {
	return b.f.Write(p)
}

func (b *localWritableBlob) Close() error {
	if !b.finished.CompareAndSwap(false, true) {
		return os.ErrClosed
	}
	tmp := b.f.Name()
	if err := b.f.Sync(); err != nil {
		_ = b.f.Close()
		_ = b.fs.Remove(tmp)
		return err
	}
	if err := b.f.Close(); err != nil {
		_ = b.fs.Remove(tmp)
		return err
	}
	if err := b.fs.Rename(tmp, b.path); err != nil {
		_ = b.fs.Remove(tmp)
		return err
	}
	return nil
}

func (b *localWritableBlob) Abort() error {
	if !b.finished.CompareAndSwap(false, true) {
		return nil
	}
	_ = b.f.Close()
	return b.fs.Remove(b.f.Name())
}
