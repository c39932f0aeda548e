package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisClient[T any] struct {
	redis  redis.Cmdable
	prefix string
}

// NewRedisClient shares cached values between instances. Keys are stored
// under prefix.
func NewRedisClient[T any](rdb redis.Cmdable, prefix string) Client[T] {
	return &redisClient[T]{redis: rdb, prefix: prefix}
}

func (r *redisClient[T]) key(k string) string {
	return r.prefix + k
}

func (r *redisClient[T]) Get(ctx context.Context, key string) (result T, err error) {
	val, err := r.redis.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return result, ErrNotExists
		}
		return result, err
	}

	if err = json.Unmarshal(val, &result); err != nil {
		return result, err
	}

	return result, nil
}

func (r *redisClient[T]) Set(ctx context.Context, key string, object T, ttl time.Duration) error {
	val, err := json.Marshal(object)
	if err != nil {
		return err
	}

	return r.redis.Set(ctx, r.key(key), val, ttl).Err()
}

func (r *redisClient[T]) Del(ctx context.Context, key string) error {
	return r.redis.Del(ctx, r.key(key)).Err()
}
