package repositories

import (
	"context"
	"database/sql"
)

type txKey struct{}

// sqlTx is satisfied by both *sql.DB and *sql.Tx.
type sqlTx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func injectTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func inTx(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// extractTxWrite returns the running unit of work or the primary.
func (r *Repository) extractTxWrite(ctx context.Context) sqlTx {
	if tx, ok := inTx(ctx); ok {
		return tx
	}
	return r.dbWrite
}

// extractTxRead returns the running unit of work or the read replica. Reads
// made inside Atomic must see the transaction's own writes.
func (r *Repository) extractTxRead(ctx context.Context) sqlTx {
	if tx, ok := inTx(ctx); ok {
		return tx
	}
	return r.dbRead
}
