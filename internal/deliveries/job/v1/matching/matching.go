package matching

import (
	"context"
	"fmt"
	"sync"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/constants"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/flag"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/retry"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/services"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

type matchingHandler struct {
	matchingSvc services.MatchingService
	retryer     retry.Retryer
	concurrency int
}

func Routes(matchingSvc services.MatchingService, retryer retry.Retryer, concurrency int) map[string]func(ctx context.Context, flag flag.Job) error {
	if concurrency <= 0 {
		concurrency = 1
	}
	handler := matchingHandler{
		matchingSvc: matchingSvc,
		retryer:     retryer,
		concurrency: concurrency,
	}

	return map[string]func(ctx context.Context, flag flag.Job) error{
		constants.JobAutoMatch:             handler.autoMatch,
		constants.JobDissolveOrphanMatches: handler.dissolveOrphanMatches,
	}
}

// autoMatch commits one auto run per client as the system actor. A run that
// loses a race is retried, other failures are collected and the remaining
// clients still run.
func (h matchingHandler) autoMatch(ctx context.Context, f flag.Job) error {
	return h.forEachClient(ctx, f, constants.LogPrefixAutoMatchJob, func(ctx context.Context, clientID string) error {
		return h.retryer.Retry(ctx, func() error {
			res, err := h.matchingSvc.Commit(ctx, clientID, "")
			if err != nil {
				return err
			}
			xlog.Info(ctx, constants.LogPrefixAutoMatchJob,
				xlog.Int("totalMatches", res.TotalMatches),
				xlog.Int("totalTransactions", res.TotalTransactions))
			return nil
		}, nil)
	})
}

func (h matchingHandler) dissolveOrphanMatches(ctx context.Context, f flag.Job) error {
	return h.forEachClient(ctx, f, constants.LogPrefixDissolveJob, func(ctx context.Context, clientID string) error {
		res, err := h.matchingSvc.DissolveOrphanMatches(ctx, clientID)
		if err != nil {
			return err
		}
		logDissolved(ctx, res)
		return nil
	})
}

func logDissolved(ctx context.Context, res *models.UnmatchResult) {
	if res == nil || res.MatchesRemoved == 0 {
		return
	}
	xlog.Warn(ctx, constants.LogPrefixDissolveJob,
		xlog.Int("matchesRemoved", res.MatchesRemoved),
		xlog.Int("transactionsUnmatched", res.TransactionsUnmatched))
}

func (h matchingHandler) clientIDs(ctx context.Context, f flag.Job) ([]string, error) {
	if f.ClientID != "" {
		return []string{f.ClientID}, nil
	}
	return h.matchingSvc.ListClientIDs(ctx)
}

// forEachClient runs fn for every target client with at most h.concurrency
// clients in flight. It returns the joined per client errors.
func (h matchingHandler) forEachClient(ctx context.Context, f flag.Job, logPrefix string, fn func(ctx context.Context, clientID string) error) error {
	ids, err := h.clientIDs(ctx, f)
	if err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		errs *multierror.Error
		eg   errgroup.Group
	)
	eg.SetLimit(h.concurrency)
	for _, id := range ids {
		eg.Go(func() error {
			cctx := xlog.SetClientID(ctx, id)
			if err := fn(cctx, id); err != nil {
				xlog.Warn(cctx, logPrefix, xlog.String("status", "client failed"), xlog.Err(err))
				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("client %s: %w", id, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = eg.Wait()

	return errs.ErrorOrNil()
}
