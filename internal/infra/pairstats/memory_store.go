package pairstats

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/daily-secrets/internal/domain/compatibility"
)

// MemoryStore counts pair requests in process.
type MemoryStore struct {
	mu     sync.RWMutex
	counts map[string]int64
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int64)}
}

// IncrementPair bumps the counter for a canonical pair key.
func (s *MemoryStore) IncrementPair(_ context.Context, pair string) error {
	if pair == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[pair]++
	return nil
}

// TopPairs returns the most requested pairs, ties broken by name.
func (s *MemoryStore) TopPairs(_ context.Context, limit int) ([]compatibility.TrendingPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.counts)
	}
	items := make([]compatibility.TrendingPair, 0, len(s.counts))
	for pair, count := range s.counts {
		items = append(items, compatibility.TrendingPair{Pair: pair, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Pair < items[j].Pair
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ compatibility.PairStats = (*MemoryStore)(nil)
