// Package cache keeps short-lived copies of reference data (clients) so a
// burst of matching calls does not hit the database for every request.
package cache

import (
	"context"
	"errors"
	"time"
)

type Client[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Set(ctx context.Context, key string, object T, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

var (
	ErrNotExists    = errors.New("key not exists on cache storage")
	ErrLoaderNotSet = errors.New("loader not provided")
)

// GetOrLoad returns the cached value of key, or calls load and caches its
// result for ttl. A failing cache write is not an error, the loaded value is
// still returned.
func GetOrLoad[T any](ctx context.Context, c Client[T], key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (result T, err error) {
	if load == nil {
		return result, ErrLoaderNotSet
	}

	result, err = c.Get(ctx, key)
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, ErrNotExists) {
		return result, err
	}

	result, err = load(ctx)
	if err != nil {
		return result, err
	}
	_ = c.Set(ctx, key, result, ttl)

	return result, nil
}
