package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/chunkhelper"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/monitoring"
)

// MinMatchMembers is the smallest group a Match may hold.
const MinMatchMembers = 2

type MatchRepository interface {
	Create(ctx context.Context, ins ...models.CreateMatchIn) (err error)
	GetByID(ctx context.Context, clientID, matchID string) (*models.Match, error)
	// GetByTransactionIDForUpdate locks the match the transaction belongs to.
	// It returns common.ErrMatchNotFound when the transaction is not matched.
	GetByTransactionIDForUpdate(ctx context.Context, clientID, transactionID string) (*models.Match, error)
	List(ctx context.Context, clientID string) ([]models.Match, error)
	DeleteByIDs(ctx context.Context, clientID string, matchIDs []string) (affected int64, err error)
	DeleteAll(ctx context.Context, clientID string) (affected int64, err error)
	UpdateDifference(ctx context.Context, clientID, matchID string, difference decimal.Decimal) (err error)
	// ListUnderPopulated returns the matches of a client with fewer than
	// MinMatchMembers members.
	ListUnderPopulated(ctx context.Context, clientID string) ([]models.MatchMemberCount, error)
}

type matchRepository sqlRepo

var _ MatchRepository = (*matchRepository)(nil)

func (mr *matchRepository) Create(ctx context.Context, ins ...models.CreateMatchIn) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if len(ins) == 0 {
		return nil
	}

	db := mr.r.extractTxWrite(ctx)

	for _, batch := range chunkhelper.Chunk(ins, maxMatchesPerInsert) {
		query, args, errBuild := buildInsertMatchesQuery(batch)
		if errBuild != nil {
			return fmt.Errorf("failed to build query: %w", errBuild)
		}

		affected, errExec := execAffected(db.ExecContext(ctx, query, args...))
		if errExec != nil {
			return errExec
		}
		if affected != int64(len(batch)) {
			return fmt.Errorf("%w: inserted %d of %d matches", common.ErrUnableToCreate, affected, len(batch))
		}
	}

	return nil
}

func (mr *matchRepository) GetByID(ctx context.Context, clientID, matchID string) (result *models.Match, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxRead(ctx)

	result = &models.Match{}
	err = scanMatch(db.QueryRowContext(ctx, queryMatchGetByID, matchID, clientID), result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrMatchNotFound
		}
		return nil, err
	}

	return result, nil
}

func (mr *matchRepository) GetByTransactionIDForUpdate(ctx context.Context, clientID, transactionID string) (result *models.Match, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	result = &models.Match{}
	err = scanMatch(db.QueryRowContext(ctx, queryMatchGetByTransactionIDForUpdate, transactionID, clientID), result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to lock match: %w", err)
	}

	return result, nil
}

func (mr *matchRepository) List(ctx context.Context, clientID string) (result []models.Match, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryMatchList, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Match
		if err = scanMatch(rows, &m); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (mr *matchRepository) DeleteByIDs(ctx context.Context, clientID string, matchIDs []string) (affected int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	return execAffected(db.ExecContext(ctx, queryMatchDeleteByIDs, clientID, pq.Array(matchIDs)))
}

func (mr *matchRepository) DeleteAll(ctx context.Context, clientID string) (affected int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	return execAffected(db.ExecContext(ctx, queryMatchDeleteAll, clientID))
}

func (mr *matchRepository) UpdateDifference(ctx context.Context, clientID, matchID string, difference decimal.Decimal) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	affected, err := execAffected(db.ExecContext(ctx, queryMatchUpdateDifference, matchID, clientID, difference))
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrMatchNotFound
	}

	return nil
}

func (mr *matchRepository) ListUnderPopulated(ctx context.Context, clientID string) (result []models.MatchMemberCount, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	rows, err := db.QueryContext(ctx, queryMatchListUnderPopulated, clientID, MinMatchMembers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var mc models.MatchMemberCount
		if err = rows.Scan(&mc.MatchID, &mc.MemberCount); err != nil {
			return nil, err
		}
		result = append(result, mc)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func scanMatch(row rowScanner, m *models.Match) error {
	return row.Scan(
		&m.ID,
		&m.ClientID,
		&m.RuleID,
		&m.MatchType,
		&m.Difference,
		&m.MatchedBy,
		&m.CreatedAt,
	)
}
