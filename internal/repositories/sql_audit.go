package repositories

import (
	"context"
	"fmt"

	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/monitoring"
)

var queryAuditLogCreate = `
	INSERT INTO "audit_logs"(
		"tenantId", "userId", "action", "entityType", "entityId", "metadata", "createdAt"
	)
	VALUES(
		$1, $2, $3, $4, $5, $6, NOW()
	)
	RETURNING "createdAt";
`

// AuditRepository writes audit entries. Call it with the Atomic ctx so the
// entry commits or rolls back with the change it describes.
type AuditRepository interface {
	Create(ctx context.Context, in *models.AuditEntry) (err error)
}

type auditRepository sqlRepo

var _ AuditRepository = (*auditRepository)(nil)

func (ar *auditRepository) Create(ctx context.Context, in *models.AuditEntry) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxWrite(ctx)

	metadata, err := in.MetadataJSON()
	if err != nil {
		return fmt.Errorf("failed to encode audit metadata: %w", err)
	}

	return db.QueryRowContext(ctx, queryAuditLogCreate,
		in.TenantID,
		in.UserID,
		in.Action,
		in.EntityType,
		in.EntityID,
		metadata,
	).Scan(&in.CreatedAt)
}
