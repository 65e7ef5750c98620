package notify

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisDedupeStore backs DedupeStore with redis TTL keys. The lifecycle of
// the store is owned by the caller that injects the client.
type RedisDedupeStore struct {
	client *redis.Client
}

func NewRedisDedupeStore(client *redis.Client) *RedisDedupeStore {
	return &RedisDedupeStore{client: client}
}

func (s *RedisDedupeStore) Seen(ctx context.Context, key string) (bool, error) {
	err := s.client.Get(ctx, key).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisDedupeStore) Mark(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, key, "1", ttl).Err()
}
