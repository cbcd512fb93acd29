package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"smartcaller_backend/internal/dashboard/transport"
)

const summaryKey = "smartcaller:last_summary"

// RedisStore persists the summary as a JSON blob under a single key with a
// TTL, so a stale summary eventually expires rather than being served
// forever.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, summary transport.Summary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := s.client.Set(ctx, summaryKey, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save summary: %w", err)
	}
	return nil
}

func (s *RedisStore) Latest(ctx context.Context) (transport.Summary, bool, error) {
	raw, err := s.client.Get(ctx, summaryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return transport.Summary{}, false, nil
	}
	if err != nil {
		return transport.Summary{}, false, fmt.Errorf("load summary: %w", err)
	}

	var summary transport.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return transport.Summary{}, false, fmt.Errorf("decode summary: %w", err)
	}
	return summary, true, nil
}

var _ SummaryStore = (*RedisStore)(nil)
