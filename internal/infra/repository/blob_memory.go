package repository

import (
	"context"
	"sync"

	repo "shopstream/internal/repository"
)

// BlobMemoryStore はテスト・一時実行用のインメモリ実装。
type BlobMemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewBlobMemoryStore() *BlobMemoryStore {
	return &BlobMemoryStore{values: make(map[string]string)}
}

func (s *BlobMemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", repo.ErrNotFound
	}
	return v, nil
}

func (s *BlobMemoryStore) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *BlobMemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
