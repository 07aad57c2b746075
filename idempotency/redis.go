package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "booking:idempotency:"

// RedisStore shares idempotency state across instances.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	bookingId, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cannot read idempotency key: %v", err)
	}
	return bookingId, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key, bookingId string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if err := s.client.Set(ctx, redisKeyPrefix+key, bookingId, ttl).Err(); err != nil {
		return fmt.Errorf("cannot store idempotency key: %v", err)
	}
	return nil
}
