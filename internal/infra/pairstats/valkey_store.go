package pairstats

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/daily-secrets/internal/domain/compatibility"
)

// ValkeyStore keeps pair counters in a sorted set.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "compat"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) IncrementPair(ctx context.Context, pair string) error {
	if pair == "" {
		return nil
	}
	return s.client.Do(ctx, s.client.B().Zincrby().Key(s.trendingKey()).Increment(1).Member(pair).Build()).Error()
}

func (s *ValkeyStore) TopPairs(ctx context.Context, limit int) ([]compatibility.TrendingPair, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.trendingKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	return parseScored(arr)
}

// parseScored accepts both RESP3 [member, score] tuples and the flat RESP2 form.
func parseScored(arr []valkey.ValkeyMessage) ([]compatibility.TrendingPair, error) {
	out := make([]compatibility.TrendingPair, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
			err    error
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			if member, err = tuple[0].ToString(); err != nil {
				return nil, err
			}
			if score, err = tuple[1].ToFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				return nil, err
			}
			if score, err = arr[i+1].ToFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		out = append(out, compatibility.TrendingPair{Pair: member, Count: int64(score)})
	}
	return out, nil
}

func (s *ValkeyStore) trendingKey() string {
	return fmt.Sprintf("%s:trending", s.prefix)
}

var _ compatibility.PairStats = (*ValkeyStore)(nil)
