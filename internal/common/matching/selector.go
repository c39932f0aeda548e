package matching

import (
	"cmp"
	"context"
	"time"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/monitoring"

	"golang.org/x/exp/slices"
)

// Selector owns the consumed set of one run. Create one per run.
type Selector struct {
	limits   Limits
	consumed map[string]struct{}
}

func NewSelector(limits Limits) *Selector {
	return &Selector{
		limits:   limits.normalize(),
		consumed: make(map[string]struct{}),
	}
}

func (s *Selector) IsConsumed(id string) bool {
	_, ok := s.consumed[id]
	return ok
}

// accept claims every member of c unless one of them is already claimed.
func (s *Selector) accept(c Candidate) bool {
	for _, id := range c.TransactionIDs {
		if s.IsConsumed(id) {
			return false
		}
	}
	for _, id := range c.TransactionIDs {
		s.consumed[id] = struct{}{}
	}
	return true
}

// OrderRules returns the active rules by ascending priority, ties by id.
func OrderRules(rules []models.MatchingRule) []models.MatchingRule {
	active := make([]models.MatchingRule, 0, len(rules))
	for _, r := range rules {
		if r.IsActive {
			active = append(active, r)
		}
	}
	slices.SortStableFunc(active, func(a, b models.MatchingRule) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return active
}

// Run selects non-overlapping groups rule by rule. Accepted members leave the
// pool after their rule, so a lower priority rule never sees them. The only
// error is the context's, in which case nothing selected so far is returned.
func (s *Selector) Run(ctx context.Context, pool *Pool, rules []models.MatchingRule) (res Result, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err),
			monitoring.WithFinishXlogFields(
				xlog.Int("totalMatches", res.Stats.TotalMatches),
				xlog.Int("totalTransactions", res.Stats.TotalTransactions)))
	}()

	start := time.Now()
	acc := NewAccumulator()
	stop := func() bool { return ctx.Err() != nil }

	for _, rule := range OrderRules(rules) {
		acc.StartRule(rule)

		gen := NewGenerator(pool, rule, s.limits, WithConsumed(s.IsConsumed), WithStop(stop))
		if gen.maxGroupSize() == 0 {
			xlog.Warn(ctx, "[MATCHING-ENGINE] unsupported rule type, rule skipped",
				xlog.String("ruleId", rule.ID),
				xlog.String("ruleType", string(rule.RuleType)))
			continue
		}

		var accepted []string
		for c := range gen.Candidates() {
			if s.accept(c) {
				acc.Add(c)
				accepted = append(accepted, c.TransactionIDs...)
			}
		}
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}

		if skipped := gen.SkippedBuckets(); skipped > 0 {
			acc.SkipBuckets(skipped)
			xlog.Warn(ctx, "[MATCHING-ENGINE] buckets over size limit were not searched",
				xlog.String("ruleId", rule.ID),
				xlog.Int("skippedBuckets", skipped),
				xlog.Int("maxBucketSize", s.limits.MaxBucketSize))
		}

		pool.Remove(accepted...)
	}

	return acc.Result(time.Since(start)), nil
}
