package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"
)

// releaseLockScript deletes the lock only while it still holds our token, so
// a run whose lock already expired cannot release the next run's lock.
const releaseLockScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

type CacheRepository interface {
	// AcquireLock takes key for ttl and returns the token needed to release
	// it. A held lock yields common.ErrRunInProgress.
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (token string, err error)
	ReleaseLock(ctx context.Context, key, token string) error
}

type cacheClient struct {
	redis    redis.Cmdable
	newToken func() string
}

func NewCacheRepository(rdb redis.Cmdable) CacheRepository {
	return &cacheClient{redis: rdb, newToken: uuid.NewString}
}

// RunLockKey is the auto-run lock of one client.
func RunLockKey(clientID string) string {
	return "recon-matching:run-lock:" + clientID
}

func (cc *cacheClient) AcquireLock(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := cc.newToken()
	ok, err := cc.redis.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return "", common.ErrRunInProgress
	}
	return token, nil
}

func (cc *cacheClient) ReleaseLock(ctx context.Context, key, token string) error {
	return cc.redis.Eval(ctx, releaseLockScript, []string{key}, token).Err()
}
