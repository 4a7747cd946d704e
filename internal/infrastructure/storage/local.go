package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// BlobStore is the opaque path-keyed store attachment bytes live in.
// Removal is best-effort: callers must not fail metadata deletes on a
// Remove error.
type BlobStore interface {
	Save(ctx context.Context, path string, r io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}

// Local stores blobs under a base directory on disk.
type Local struct{ base string }

func NewLocal(base string) (*Local, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &Local{base: base}, nil
}

func (l *Local) full(path string) string { return filepath.Join(l.base, filepath.Clean("/"+path)) }

func (l *Local) Save(_ context.Context, path string, r io.Reader) (int64, error) {
	dst := l.full(path)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, err
	}
	f, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(f, r)
}

func (l *Local) Open(_ context.Context, path string) (io.ReadCloser, error) {
	return os.Open(l.full(path))
}

func (l *Local) Remove(_ context.Context, path string) error {
	return os.Remove(l.full(path))
}
