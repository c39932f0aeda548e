package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/monitoring"
)

type TransactionRepository interface {
	// ListUnmatched loads the matching pool of a client.
	ListUnmatched(ctx context.Context, clientID string) ([]models.Transaction, error)
	// GetByIDsForUpdate locks the given rows of a client. Unknown ids are
	// simply missing from the result.
	GetByIDsForUpdate(ctx context.Context, clientID string, ids []string) ([]models.Transaction, error)
	// ListMatched returns matched transactions ordered by match, optionally
	// limited to some matches.
	ListMatched(ctx context.Context, clientID string, matchIDs ...string) ([]models.Transaction, error)

	// MarkMatched flips unmatched rows to matched and reports how many rows
	// changed. Rows already matched are left alone.
	MarkMatched(ctx context.Context, clientID, matchID string, ids []string) (affected int64, err error)
	UnmatchByMatchIDs(ctx context.Context, clientID string, matchIDs []string) (affected int64, err error)
	UnmatchAll(ctx context.Context, clientID string) (affected int64, err error)
	Detach(ctx context.Context, clientID, transactionID, matchID string) (affected int64, err error)
}

type transactionRepository sqlRepo

var _ TransactionRepository = (*transactionRepository)(nil)

func (tr *transactionRepository) ListUnmatched(ctx context.Context, clientID string) (result []models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryTransactionListUnmatched, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unmatched transactions: %w", err)
	}

	return scanTransactions(rows)
}

func (tr *transactionRepository) GetByIDsForUpdate(ctx context.Context, clientID string, ids []string) (result []models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxWrite(ctx)

	rows, err := db.QueryContext(ctx, queryTransactionGetByIDsForUpdate, clientID, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to lock transactions: %w", err)
	}

	return scanTransactions(rows)
}

func (tr *transactionRepository) ListMatched(ctx context.Context, clientID string, matchIDs ...string) (result []models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxRead(ctx)

	query, args, err := buildListMatchedTransactionsQuery(clientID, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list matched transactions: %w", err)
	}

	return scanTransactions(rows)
}

func (tr *transactionRepository) MarkMatched(ctx context.Context, clientID, matchID string, ids []string) (affected int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxWrite(ctx)

	return execAffected(db.ExecContext(ctx, queryTransactionMarkMatched, clientID, pq.Array(ids), matchID))
}

func (tr *transactionRepository) UnmatchByMatchIDs(ctx context.Context, clientID string, matchIDs []string) (affected int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxWrite(ctx)

	return execAffected(db.ExecContext(ctx, queryTransactionUnmatchByMatchIDs, clientID, pq.Array(matchIDs)))
}

func (tr *transactionRepository) UnmatchAll(ctx context.Context, clientID string) (affected int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxWrite(ctx)

	return execAffected(db.ExecContext(ctx, queryTransactionUnmatchAll, clientID))
}

func (tr *transactionRepository) Detach(ctx context.Context, clientID, transactionID, matchID string) (affected int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxWrite(ctx)

	return execAffected(db.ExecContext(ctx, queryTransactionDetach, clientID, transactionID, matchID))
}

func scanTransactions(rows *sql.Rows) (result []models.Transaction, err error) {
	defer rows.Close()

	for rows.Next() {
		var t models.Transaction
		err = rows.Scan(
			&t.ID,
			&t.ClientID,
			&t.Set,
			&t.Amount,
			&t.ForeignAmount,
			&t.Currency,
			&t.ForeignCurrency,
			&t.Date,
			&t.SecondaryDate,
			&t.Description,
			&t.Voucher,
			&t.Reference,
			&t.IsImported,
			&t.MatchStatus,
			&t.MatchID,
			&t.Version,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func execAffected(res sql.Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
