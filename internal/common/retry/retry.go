package retry

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/config"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	Retry(ctx context.Context, operation func() error, onGiveUp func(err error) error) error
}

type exponentialBackoff struct {
	ebCfg config.ExponentialBackOffConfig
}

// NewExponentialBackOff returns a Retryer that retries only errors
// common.IsRetryable accepts. Zero config values fall back to the backoff
// library defaults.
func NewExponentialBackOff(ebCfg config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime <= 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}
	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}
	if ebCfg.InitialInterval <= 0 {
		ebCfg.InitialInterval = backoff.DefaultInitialInterval
	}
	if ebCfg.MaxRetries == 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

// Retry runs operation until it succeeds, fails with a non-retryable error
// or runs out of attempts. In the last two cases onGiveUp, when set, gets the
// final error and its result is returned instead.
func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error, onGiveUp func(err error) error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.ebCfg.InitialInterval
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		err := operation()
		if err != nil && !common.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		if err != nil {
			xlog.Warn(ctx, "[RETRY] retryable error", xlog.Int("attempt", attempt), xlog.Err(err))
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
	if err == nil {
		return nil
	}

	if onGiveUp != nil {
		return onGiveUp(err)
	}
	return err
}
