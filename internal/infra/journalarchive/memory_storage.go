package journalarchive

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"sync"

	"github.com/yanqian/daily-secrets/internal/domain/journal"
)

// MemoryStorage keeps exports in memory for tests and local dev.
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string]storedBlob
}

type storedBlob struct {
	data     []byte
	mimeType string
	etag     string
}

// NewMemoryStorage constructs storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string]storedBlob)}
}

// Put stores a copy of data under key.
func (s *MemoryStorage) Put(_ context.Context, key string, data []byte, mimeType string) (journal.StoredObject, error) {
	hash := md5.Sum(data)
	etag := hex.EncodeToString(hash[:])
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = storedBlob{data: append([]byte(nil), data...), mimeType: mimeType, etag: etag}
	return journal.StoredObject{Key: key, Size: int64(len(data)), ETag: etag}, nil
}

// Object returns the stored bytes and content type for key.
func (s *MemoryStorage) Object(key string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, "", false
	}
	return append([]byte(nil), blob.data...), blob.mimeType, true
}

var _ journal.ObjectStorage = (*MemoryStorage)(nil)
