package journal

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists journal entries.
type Repository interface {
	Create(ctx context.Context, entry Entry) error
	Get(ctx context.Context, id uuid.UUID) (Entry, bool, error)
	List(ctx context.Context, owner string, limit int) ([]Entry, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ObjectStorage abstracts blob storage used for exports.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredObject, error)
}

// StoredObject captures persisted blob metadata.
type StoredObject struct {
	Key  string
	Size int64
	ETag string
}
