package blobmock

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"
)

// Store is an in-memory blob store for tests.
type Store struct {
	mu    sync.Mutex
	blobs map[string][]byte

	Removed []string
}

func New() *Store { return &Store{blobs: map[string][]byte{}} }

func (s *Store) Save(_ context.Context, path string, r io.Reader) (int64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[path] = b
	return int64(len(b)), nil
}

func (s *Store) Open(_ context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *Store) Remove(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[path]; !ok {
		return os.ErrNotExist
	}
	delete(s.blobs, path)
	s.Removed = append(s.Removed, path)
	return nil
}

// Len reports how many blobs are currently stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
