package graceful

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"

	"golang.org/x/exp/slices"
)

// ProcessStarter blocks while the process runs.
type ProcessStarter func() error

// ProcessStopper must return once ctx is done.
type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

// StartProcessAtBackground runs every starter in its own goroutine. Start
// failures other than a closed server are logged.
func StartProcessAtBackground(ctx context.Context, ps ...ProcessStarter) {
	for _, p := range ps {
		if p == nil {
			continue
		}
		go func(start ProcessStarter) {
			if err := start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				xlog.Error(ctx, "[GRACEFUL] process stopped with error", xlog.Err(err))
			}
		}(p)
	}
}

// StopProcessAtBackground waits for SIGINT, SIGTERM, SIGUSR1 or ctx to be
// done and then stops ps.
func StopProcessAtBackground(ctx context.Context, duration time.Duration, ps ...ProcessStopper) {
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	<-sigCtx.Done()
	xlog.Info(ctx, "[GRACEFUL] shutting down", xlog.Duration("timeout", duration))
	StopProcess(duration, ps...)
}

// StopProcess calls the stoppers in reverse order, each with its own
// timeout.
func StopProcess(duration time.Duration, ps ...ProcessStopper) {
	reversed := slices.Clone(ps)
	slices.Reverse(reversed)

	for _, p := range reversed {
		if p == nil {
			continue
		}
		func() {
			ctx, cancel := context.WithTimeout(context.Background(), duration)
			defer cancel()
			if err := p(ctx); err != nil {
				xlog.Warn(ctx, "[GRACEFUL] stop failed", xlog.Err(err))
			}
		}()
	}
}
