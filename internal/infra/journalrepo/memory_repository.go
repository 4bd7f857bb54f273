package journalrepo

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/yanqian/daily-secrets/internal/domain/journal"
)

// MemoryRepository is an in-memory journal.Repository used for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]journal.Entry
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[uuid.UUID]journal.Entry)}
}

// Create implements journal.Repository.
func (r *MemoryRepository) Create(_ context.Context, entry journal.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.ID] = cloneEntry(entry)
	return nil
}

// Get implements journal.Repository.
func (r *MemoryRepository) Get(_ context.Context, id uuid.UUID) (journal.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return journal.Entry{}, false, nil
	}
	return cloneEntry(entry), true, nil
}

// List implements journal.Repository, newest first.
func (r *MemoryRepository) List(_ context.Context, owner string, limit int) ([]journal.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]journal.Entry, 0)
	for _, entry := range r.entries {
		if entry.Owner == owner {
			out = append(out, cloneEntry(entry))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Delete implements journal.Repository.
func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false, nil
	}
	delete(r.entries, id)
	return true, nil
}

func cloneEntry(e journal.Entry) journal.Entry {
	if e.Payload != nil {
		e.Payload = append(json.RawMessage(nil), e.Payload...)
	}
	return e
}

var _ journal.Repository = (*MemoryRepository)(nil)
