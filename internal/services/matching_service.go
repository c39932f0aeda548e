package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/constants"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/matching"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/metrics"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/publisher"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/validation"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/monitoring"
	"bitbucket.org/Amartha/go-recon-matching/internal/repositories"
)

type MatchingService interface {
	Preview(ctx context.Context, clientID string) (*models.RunStats, error)
	Commit(ctx context.Context, clientID, actorID string) (*models.CommitResult, error)
	CreateManualMatch(ctx context.Context, clientID, actorID string, transactionIDs []string) (*models.ManualMatchResult, error)
	Unmatch(ctx context.Context, clientID, actorID string, req models.UnmatchRequest) (*models.UnmatchResult, error)
	GetMatches(ctx context.Context, clientID string) ([]models.MatchWithMembers, error)
	DissolveOrphanMatches(ctx context.Context, clientID string) (*models.UnmatchResult, error)
	ListClientIDs(ctx context.Context) ([]string, error)
}

type matchingService service

var _ MatchingService = (*matchingService)(nil)

// Preview runs the selection over the read replica and writes nothing.
func (s *matchingService) Preview(ctx context.Context, clientID string) (output *models.RunStats, err error) {
	monitor := monitoring.New(ctx)
	start := time.Now()
	defer func() {
		s.srv.matchingMetrics().ObserveRun(start, metrics.RunModePreview, output, err)
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if _, err = s.srv.sqlRepo.GetClientRepository().GetByID(ctx, clientID); err != nil {
		return
	}

	res, err := s.selectGroups(ctx, s.srv.sqlRepo, clientID)
	if err != nil {
		return
	}
	output = &res.Stats

	return
}

// Commit persists one auto run. The pool is reloaded inside the database
// transaction so the groups are selected from the rows the guarded updates
// will see.
func (s *matchingService) Commit(ctx context.Context, clientID, actorID string) (output *models.CommitResult, err error) {
	monitor := monitoring.New(ctx)
	start := time.Now()
	var stats *models.RunStats
	defer func() {
		if errors.Is(err, common.ErrConcurrentModification) {
			s.srv.matchingMetrics().ObserveConflict()
		}
		s.srv.matchingMetrics().ObserveRun(start, metrics.RunModeCommit, stats, err)
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	client, err := s.srv.sqlRepo.GetClientRepository().GetByID(ctx, clientID)
	if err != nil {
		return
	}

	lockKey := repositories.RunLockKey(clientID)
	token, err := s.srv.cacheRepo.AcquireLock(ctx, lockKey, s.srv.conf.Matching.RunLockTTL)
	if err != nil {
		return
	}
	defer func() {
		if errRelease := s.srv.cacheRepo.ReleaseLock(context.WithoutCancel(ctx), lockKey, token); errRelease != nil {
			xlog.Warn(ctx, constants.LogPrefixMatchingService,
				xlog.String("status", "failed release run lock"),
				xlog.String("clientId", clientID),
				xlog.Err(errRelease))
		}
	}()

	if timeout := s.srv.conf.Matching.CommitTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var res matching.Result
	err = s.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		var errAtomic error
		res, errAtomic = s.selectGroups(actx, r, clientID)
		if errAtomic != nil {
			return errAtomic
		}

		ins := make([]models.CreateMatchIn, 0, len(res.Groups))
		for _, g := range res.Groups {
			ruleID := g.RuleID
			ins = append(ins, models.CreateMatchIn{
				ID:             s.srv.idgenerator.Generate(),
				ClientID:       clientID,
				RuleID:         &ruleID,
				MatchType:      models.MatchTypeAuto,
				Difference:     g.Net,
				MatchedBy:      actorRef(actorID),
				TransactionIDs: g.TransactionIDs,
			})
		}

		if len(ins) > 0 {
			if errAtomic = r.GetMatchRepository().Create(actx, ins...); errAtomic != nil {
				return errAtomic
			}
		}
		for _, in := range ins {
			if errAtomic = markMatched(actx, r, clientID, in.ID, in.TransactionIDs); errAtomic != nil {
				return errAtomic
			}
		}

		return r.GetAuditRepository().Create(actx, &models.AuditEntry{
			TenantID:   client.TenantID,
			UserID:     actorRef(actorID),
			Action:     models.AuditActionAutoMatchCommit,
			EntityType: models.AuditEntityClient,
			EntityID:   &clientID,
			Metadata: map[string]any{
				"totalMatches":      res.Stats.TotalMatches,
				"totalTransactions": res.Stats.TotalTransactions,
				"byRule":            res.Stats.ByRule,
			},
		})
	})
	if err != nil {
		return
	}
	stats = &res.Stats

	s.srv.matchingMetrics().ObserveMatches(models.MatchTypeAuto, res.Stats.TotalMatches, res.Stats.TotalTransactions)
	if res.Stats.TotalMatches > 0 {
		s.notify(ctx, models.MatchNotification{
			ClientID:         clientID,
			MatchCount:       res.Stats.TotalMatches,
			TransactionCount: res.Stats.TotalTransactions,
		})
	}

	output = &models.CommitResult{
		TotalMatches:          res.Stats.TotalMatches,
		TotalTransactions:     res.Stats.TotalTransactions,
		MatchedTransactionIDs: res.MatchedTransactionIDs(),
		Stats:                 res.Stats,
	}

	return
}

// CreateManualMatch groups caller chosen transactions. The net may deviate
// from zero by at most the client tolerance.
func (s *matchingService) CreateManualMatch(ctx context.Context, clientID, actorID string, transactionIDs []string) (output *models.ManualMatchResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if err = validateManualSelection(actorID, transactionIDs); err != nil {
		return
	}

	client, err := s.srv.sqlRepo.GetClientRepository().GetByID(ctx, clientID)
	if err != nil {
		return
	}

	matchID := s.srv.idgenerator.Generate()
	err = s.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		txs, errAtomic := r.GetTransactionRepository().GetByIDsForUpdate(actx, clientID, transactionIDs)
		if errAtomic != nil {
			return errAtomic
		}
		if missing := missingIDs(transactionIDs, txs); len(missing) > 0 {
			return fmt.Errorf("%w: %v", common.ErrTransactionNotFound, missing)
		}

		net := sumAmounts(txs)
		for _, t := range txs {
			if t.IsMatched() {
				return fmt.Errorf("%w: %s", common.ErrAlreadyMatched, t.ID)
			}
		}
		if tolerance := client.Tolerance(); net.Abs().GreaterThan(tolerance) {
			return fmt.Errorf("%w: net %s, tolerance %s", common.ErrSumNotZero, net, tolerance)
		}

		errAtomic = r.GetMatchRepository().Create(actx, models.CreateMatchIn{
			ID:             matchID,
			ClientID:       clientID,
			MatchType:      models.MatchTypeManual,
			Difference:     net,
			MatchedBy:      actorRef(actorID),
			TransactionIDs: transactionIDs,
		})
		if errAtomic != nil {
			return errAtomic
		}
		if errAtomic = markMatched(actx, r, clientID, matchID, transactionIDs); errAtomic != nil {
			return errAtomic
		}

		return r.GetAuditRepository().Create(actx, &models.AuditEntry{
			TenantID:   client.TenantID,
			UserID:     actorRef(actorID),
			Action:     models.AuditActionManualMatchCreate,
			EntityType: models.AuditEntityMatch,
			EntityID:   &matchID,
			Metadata: map[string]any{
				"transactionIds": transactionIDs,
				"difference":     net.String(),
			},
		})
	})
	if err != nil {
		return
	}

	s.srv.matchingMetrics().ObserveMatches(models.MatchTypeManual, 1, len(transactionIDs))
	output = &models.ManualMatchResult{
		MatchID:          matchID,
		TransactionCount: len(transactionIDs),
	}

	return
}

// GetMatches returns every match of the client with its members. Membership
// comes from the transactions pointing at the match.
func (s *matchingService) GetMatches(ctx context.Context, clientID string) (output []models.MatchWithMembers, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if _, err = s.srv.sqlRepo.GetClientRepository().GetByID(ctx, clientID); err != nil {
		return
	}

	matches, err := s.srv.sqlRepo.GetMatchRepository().List(ctx, clientID)
	if err != nil {
		return
	}
	members, err := s.srv.sqlRepo.GetTransactionRepository().ListMatched(ctx, clientID)
	if err != nil {
		return
	}

	index := membersByMatch(members)
	output = make([]models.MatchWithMembers, 0, len(matches))
	for _, m := range matches {
		output = append(output, models.MatchWithMembers{
			Match:          m,
			TransactionIDs: index[m.ID],
		})
	}

	return
}

// ListClientIDs lists every client a scheduled run has to visit.
func (s *matchingService) ListClientIDs(ctx context.Context) (output []string, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	return s.srv.sqlRepo.GetClientRepository().ListIDs(ctx)
}

// selectGroups loads the pool and the active rules through r and runs one
// selection pass over them.
func (s *matchingService) selectGroups(ctx context.Context, r repositories.SQLRepository, clientID string) (matching.Result, error) {
	txs, err := r.GetTransactionRepository().ListUnmatched(ctx, clientID)
	if err != nil {
		return matching.Result{}, err
	}

	rules, err := r.GetMatchingRuleRepository().List(ctx, models.MatchingRuleFilterOptions{
		ClientID:   clientID,
		ActiveOnly: true,
	})
	if err != nil {
		return matching.Result{}, err
	}

	return matching.NewSelector(s.srv.limits()).Run(ctx, matching.NewPool(txs), rules)
}

func (s *matchingService) notify(ctx context.Context, msg models.MatchNotification) {
	if s.srv.matchNotificationPub == nil {
		return
	}

	err := s.srv.matchNotificationPub.Publish(ctx, msg,
		publisher.WithKey(msg.ClientID),
		publisher.WithHeaders(map[string]string{xlog.HeaderCorrelationID: xlog.GetCorrelationID(ctx)}))
	if err != nil {
		xlog.Warn(ctx, constants.LogPrefixMatchingService,
			xlog.String("status", "failed publish match notification"),
			xlog.String("clientId", msg.ClientID),
			xlog.Err(err))
	}
}

// markMatched flips ids to matched. Fewer flipped rows than ids means
// another writer got there first.
func markMatched(ctx context.Context, r repositories.SQLRepository, clientID, matchID string, ids []string) error {
	affected, err := r.GetTransactionRepository().MarkMatched(ctx, clientID, matchID, ids)
	if err != nil {
		return err
	}
	if affected != int64(len(ids)) {
		return fmt.Errorf("%w: match %s flipped %d of %d transactions",
			common.ErrConcurrentModification, matchID, affected, len(ids))
	}
	return nil
}

func validateManualSelection(actorID string, ids []string) error {
	if actorID == "" {
		return common.ErrMissingActor
	}
	if len(ids) == 0 {
		return common.ErrEmptyTransactionList
	}
	if len(ids) < repositories.MinMatchMembers {
		return fmt.Errorf("%w: %d given", common.ErrInsufficientTransactions, len(ids))
	}
	return validation.ValidateUUIDs(ids)
}
