package storage

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/cliento-portal/utils"
)

// MemoryStore is an in-memory BlobStore used by tests and local development.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]memoryBlob
}

type memoryBlob struct {
	data []byte
	meta Metadata
}

// NewMemoryStore creates an empty in-memory blob store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]memoryBlob)}
}

func (s *MemoryStore) Store(_ context.Context, r io.Reader, _ string, meta Metadata) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	ref := utils.GenerateID()
	s.mu.Lock()
	s.blobs[ref] = memoryBlob{data: data, meta: meta}
	s.mu.Unlock()
	return ref, nil
}

func (s *MemoryStore) Retrieve(_ context.Context, ref string) (io.ReadCloser, string, error) {
	s.mu.RLock()
	blob, ok := s.blobs[ref]
	s.mu.RUnlock()
	if !ok {
		return nil, "", ErrNotFound
	}
	mimeType := blob.meta.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return io.NopCloser(bytes.NewReader(blob.data)), mimeType, nil
}

func (s *MemoryStore) Delete(_ context.Context, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[ref]; !ok {
		return ErrNotFound
	}
	delete(s.blobs, ref)
	return nil
}

func (s *MemoryStore) GetUploader(_ context.Context, ref string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[ref]
	if !ok {
		return "", ErrNotFound
	}
	return blob.meta.Uploader, nil
}

// Len reports the number of stored blobs.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
