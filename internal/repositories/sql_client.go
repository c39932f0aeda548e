package repositories

import (
	"context"
	"database/sql"
	"errors"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/cache"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/monitoring"
)

var (
	queryClientGetByID = `SELECT
		  "id", "tenantId", "name", "allowTolerance", COALESCE("toleranceAmount", 0) AS "toleranceAmount"
		FROM "clients"
		WHERE "id" = $1;`

	queryClientListIDs = `SELECT "id" FROM "clients" ORDER BY "id";`
)

type ClientRepository interface {
	// GetByID is served from the client cache when possible.
	GetByID(ctx context.Context, clientID string) (*models.Client, error)
	ListIDs(ctx context.Context) ([]string, error)
}

type clientRepository sqlRepo

var _ ClientRepository = (*clientRepository)(nil)

func (cr *clientRepository) GetByID(ctx context.Context, clientID string) (result *models.Client, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	client, err := cache.GetOrLoad(ctx, cr.r.cacheClient, "client:"+clientID, cr.r.config.Matching.ClientCacheTTL,
		func(ctx context.Context) (models.Client, error) {
			return cr.load(ctx, clientID)
		})
	if err != nil {
		return nil, err
	}

	return &client, nil
}

func (cr *clientRepository) load(ctx context.Context, clientID string) (c models.Client, err error) {
	db := cr.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryClientGetByID, clientID).Scan(
		&c.ID,
		&c.TenantID,
		&c.Name,
		&c.AllowTolerance,
		&c.ToleranceAmount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, common.ErrClientNotFound
		}
		return c, err
	}

	return c, nil
}

func (cr *clientRepository) ListIDs(ctx context.Context) (result []string, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := cr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryClientListIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
