package services

import (
	"context"
	"errors"
	"fmt"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/validation"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/monitoring"
	"bitbucket.org/Amartha/go-recon-matching/internal/repositories"
)

// Unmatch reverts matches selected by exactly one of matchId, all or
// transactionId. Each call is one database transaction with one audit entry.
func (s *matchingService) Unmatch(ctx context.Context, clientID, actorID string, req models.UnmatchRequest) (output *models.UnmatchResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if err = validateUnmatchRequest(req); err != nil {
		return
	}

	client, err := s.srv.sqlRepo.GetClientRepository().GetByID(ctx, clientID)
	if err != nil {
		return
	}

	result := &models.UnmatchResult{}
	err = s.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		u := unmatcher{r: r, client: client, actorID: actorID, result: result}
		switch {
		case req.MatchID != "":
			return u.byMatch(actx, req.MatchID)
		case req.All:
			return u.all(actx)
		default:
			return u.byTransaction(actx, req.TransactionID)
		}
	})
	if err != nil {
		return
	}
	output = result

	return
}

// DissolveOrphanMatches reverts every match of the client left with fewer
// than two members.
func (s *matchingService) DissolveOrphanMatches(ctx context.Context, clientID string) (output *models.UnmatchResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	client, err := s.srv.sqlRepo.GetClientRepository().GetByID(ctx, clientID)
	if err != nil {
		return
	}

	result := &models.UnmatchResult{}
	err = s.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		orphans, errAtomic := r.GetMatchRepository().ListUnderPopulated(actx, clientID)
		if errAtomic != nil {
			return errAtomic
		}
		if len(orphans) == 0 {
			return nil
		}

		matchIDs := make([]string, 0, len(orphans))
		for _, o := range orphans {
			matchIDs = append(matchIDs, o.MatchID)
		}

		u := unmatcher{r: r, client: client, result: result}
		if errAtomic = u.dissolve(actx, matchIDs); errAtomic != nil {
			return errAtomic
		}

		return u.audit(actx, models.AuditActionDissolveOrphans, models.AuditEntityClient, clientID, map[string]any{
			"matchIds":              matchIDs,
			"transactionsUnmatched": result.TransactionsUnmatched,
		})
	})
	if err != nil {
		return
	}
	output = result

	return
}

// unmatcher carries the state of one unmatch unit of work.
type unmatcher struct {
	r       repositories.SQLRepository
	client  *models.Client
	actorID string
	result  *models.UnmatchResult
}

func (u unmatcher) byMatch(ctx context.Context, matchID string) error {
	if _, err := u.r.GetMatchRepository().GetByID(ctx, u.client.ID, matchID); err != nil {
		return err
	}
	if err := u.dissolve(ctx, []string{matchID}); err != nil {
		return err
	}

	return u.audit(ctx, models.AuditActionUnmatchMatch, models.AuditEntityMatch, matchID, map[string]any{
		"transactionsUnmatched": u.result.TransactionsUnmatched,
	})
}

func (u unmatcher) all(ctx context.Context) error {
	flipped, err := u.r.GetTransactionRepository().UnmatchAll(ctx, u.client.ID)
	if err != nil {
		return err
	}
	removed, err := u.r.GetMatchRepository().DeleteAll(ctx, u.client.ID)
	if err != nil {
		return err
	}
	u.result.TransactionsUnmatched += int(flipped)
	u.result.MatchesRemoved += int(removed)

	return u.audit(ctx, models.AuditActionUnmatchAll, models.AuditEntityClient, u.client.ID, map[string]any{
		"matchesRemoved":        u.result.MatchesRemoved,
		"transactionsUnmatched": u.result.TransactionsUnmatched,
	})
}

// byTransaction detaches one member. A group left with a single member is
// dissolved, a larger one gets its difference recomputed. The match row is
// locked before the member row and before the members are counted, so two
// detaches from the same match run one after the other.
func (u unmatcher) byTransaction(ctx context.Context, transactionID string) error {
	trxRepo := u.r.GetTransactionRepository()

	match, err := u.r.GetMatchRepository().GetByTransactionIDForUpdate(ctx, u.client.ID, transactionID)
	if err != nil && !errors.Is(err, common.ErrMatchNotFound) {
		return err
	}

	txs, err := trxRepo.GetByIDsForUpdate(ctx, u.client.ID, []string{transactionID})
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		return fmt.Errorf("%w: %s", common.ErrTransactionNotFound, transactionID)
	}
	trx := txs[0]
	if !trx.IsMatched() || trx.MatchID == nil {
		return fmt.Errorf("%w: %s", common.ErrNotMatched, transactionID)
	}
	if match == nil || match.ID != *trx.MatchID {
		return fmt.Errorf("%w: transaction %s changed match while waiting for lock", common.ErrConcurrentModification, transactionID)
	}
	matchID := match.ID

	members, err := trxRepo.ListMatched(ctx, u.client.ID, matchID)
	if err != nil {
		return err
	}
	if len(members) < repositories.MinMatchMembers {
		return fmt.Errorf("%w: match %s has %d members", common.ErrInvariantViolation, matchID, len(members))
	}

	detached, err := trxRepo.Detach(ctx, u.client.ID, transactionID, matchID)
	if err != nil {
		return err
	}
	if detached != 1 {
		return fmt.Errorf("%w: transaction %s left match %s", common.ErrConcurrentModification, transactionID, matchID)
	}
	u.result.TransactionsUnmatched++

	remaining := make([]models.Transaction, 0, len(members)-1)
	for _, m := range members {
		if m.ID != transactionID {
			remaining = append(remaining, m)
		}
	}

	dissolved := len(remaining) < repositories.MinMatchMembers
	if dissolved {
		err = u.dissolve(ctx, []string{matchID})
	} else {
		err = u.r.GetMatchRepository().UpdateDifference(ctx, u.client.ID, matchID, sumAmounts(remaining))
	}
	if err != nil {
		return err
	}

	return u.audit(ctx, models.AuditActionUnmatchDetach, models.AuditEntityTransaction, transactionID, map[string]any{
		"matchId":   matchID,
		"dissolved": dissolved,
	})
}

// dissolve flips every member of matchIDs back to unmatched and deletes the
// matches.
func (u unmatcher) dissolve(ctx context.Context, matchIDs []string) error {
	flipped, err := u.r.GetTransactionRepository().UnmatchByMatchIDs(ctx, u.client.ID, matchIDs)
	if err != nil {
		return err
	}
	removed, err := u.r.GetMatchRepository().DeleteByIDs(ctx, u.client.ID, matchIDs)
	if err != nil {
		return err
	}
	u.result.TransactionsUnmatched += int(flipped)
	u.result.MatchesRemoved += int(removed)
	return nil
}

func (u unmatcher) audit(ctx context.Context, action, entityType, entityID string, metadata map[string]any) error {
	return u.r.GetAuditRepository().Create(ctx, &models.AuditEntry{
		TenantID:   u.client.TenantID,
		UserID:     actorRef(u.actorID),
		Action:     action,
		EntityType: entityType,
		EntityID:   &entityID,
		Metadata:   metadata,
	})
}

func validateUnmatchRequest(req models.UnmatchRequest) error {
	if req.SelectorCount() != 1 {
		return common.ErrInvalidUnmatchSelector
	}
	switch {
	case req.MatchID != "":
		return validation.ValidateUUIDs([]string{req.MatchID})
	case req.TransactionID != "":
		return validation.ValidateUUIDs([]string{req.TransactionID})
	}
	return nil
}
