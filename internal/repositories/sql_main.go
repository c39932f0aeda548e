package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/cache"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/config"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	tr  *transactionRepository
	mrr *matchingRuleRepository
	mr  *matchRepository
	cr  *clientRepository
	ar  *auditRepository

	cacheClient cache.Client[models.Client]
}

type RepositoryOption func(*Repository)

// WithClientCache replaces the in-memory client cache, e.g. with a redis one
// shared between instances.
func WithClientCache(c cache.Client[models.Client]) RepositoryOption {
	return func(r *Repository) {
		r.cacheClient = c
	}
}

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config, opts ...RepositoryOption) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.tr = (*transactionRepository)(&rtx.common)
	rtx.mrr = (*matchingRuleRepository)(&rtx.common)
	rtx.mr = (*matchRepository)(&rtx.common)
	rtx.cr = (*clientRepository)(&rtx.common)
	rtx.ar = (*auditRepository)(&rtx.common)

	rtx.cacheClient = cache.NewInMemoryClient[models.Client]()
	for _, opt := range opts {
		opt(rtx)
	}

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetTransactionRepository() TransactionRepository
	GetMatchingRuleRepository() MatchingRuleRepository
	GetMatchRepository() MatchRepository
	GetClientRepository() ClientRepository
	GetAuditRepository() AuditRepository
}

var _ SQLRepository = (*Repository)(nil)

// Atomic runs steps inside one database transaction. Every repository call
// made with the ctx handed to steps joins it. Any error or panic rolls the
// whole unit back.
func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			xlog.Error(ctx, "[DATABASE.TRANSACTION.PANIC]", xlog.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
			}
			xlog.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", xlog.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				xlog.Warn(ctx, "[DATABASE.TRANSACTION.COMMIT_FAILED]", xlog.Err(err))
				return
			}

			xlog.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetTransactionRepository() TransactionRepository {
	return r.tr
}

func (r *Repository) GetMatchingRuleRepository() MatchingRuleRepository {
	return r.mrr
}

func (r *Repository) GetMatchRepository() MatchRepository {
	return r.mr
}

func (r *Repository) GetClientRepository() ClientRepository {
	return r.cr
}

func (r *Repository) GetAuditRepository() AuditRepository {
	return r.ar
}
