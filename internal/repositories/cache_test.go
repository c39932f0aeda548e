package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"
)

func cacheTestHelper(t *testing.T) (redismock.ClientMock, CacheRepository) {
	t.Helper()
	t.Parallel()

	db, mock := redismock.NewClientMock()
	cacheRepo := &cacheClient{redis: db, newToken: func() string { return "token-1" }}

	return mock, cacheRepo
}

func TestCacheRepository_AcquireLock(t *testing.T) {
	mock, rc := cacheTestHelper(t)
	key := RunLockKey(testClientID)
	ttl := 5 * time.Minute

	tests := []struct {
		name      string
		doMock    func()
		wantToken string
		wantErr   error
	}{
		{
			name: "lock acquired",
			doMock: func() {
				mock.ExpectSetNX(key, "token-1", ttl).SetVal(true)
			},
			wantToken: "token-1",
		},
		{
			name: "lock held by another run",
			doMock: func() {
				mock.ExpectSetNX(key, "token-1", ttl).SetVal(false)
			},
			wantErr: common.ErrRunInProgress,
		},
		{
			name: "redis error",
			doMock: func() {
				mock.ExpectSetNX(key, "token-1", ttl).SetErr(redis.ErrClosed)
			},
			wantErr: redis.ErrClosed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			got, err := rc.AcquireLock(context.TODO(), key, ttl)
			assert.Equal(t, tt.wantToken, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
			mock.ClearExpect()
		})
	}
}

func TestCacheRepository_ReleaseLock(t *testing.T) {
	mock, rc := cacheTestHelper(t)
	key := RunLockKey(testClientID)

	mock.ExpectEval(releaseLockScript, []string{key}, "token-1").SetVal(int64(1))
	assert.NoError(t, rc.ReleaseLock(context.TODO(), key, "token-1"))

	mock.ExpectEval(releaseLockScript, []string{key}, "token-1").SetErr(redis.ErrClosed)
	assert.ErrorIs(t, rc.ReleaseLock(context.TODO(), key, "token-1"), redis.ErrClosed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunLockKey(t *testing.T) {
	assert.Equal(t, "recon-matching:run-lock:abc", RunLockKey("abc"))
}
