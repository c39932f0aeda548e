package repositories

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"bitbucket.org/Amartha/go-recon-matching/internal/models"
)

var transactionColumns = []string{
	`"id"`,
	`"clientId"`,
	`"set"`,
	`"amount"`,
	`"foreignAmount"`,
	`"currency"`,
	`"foreignCurrency"`,
	`"date"`,
	`"secondaryDate"`,
	`COALESCE("description", '') AS "description"`,
	`COALESCE("voucher", '') AS "voucher"`,
	`COALESCE("reference", '') AS "reference"`,
	`"isImported"`,
	`"matchStatus"`,
	`"matchId"`,
	`"version"`,
	`"createdAt"`,
	`"updatedAt"`,
}

var (
	queryTransactionSelect = `SELECT
		"id", "clientId", "set", "amount", "foreignAmount", "currency", "foreignCurrency",
		"date", "secondaryDate",
		COALESCE("description", '') AS "description",
		COALESCE("voucher", '') AS "voucher",
		COALESCE("reference", '') AS "reference",
		"isImported", "matchStatus", "matchId", "version", "createdAt", "updatedAt"
	FROM "transactions"`

	queryTransactionListUnmatched = queryTransactionSelect + `
	WHERE "clientId" = $1 AND "matchStatus" = 'unmatched'
	ORDER BY "date", "id";`

	queryTransactionGetByIDsForUpdate = queryTransactionSelect + `
	WHERE "clientId" = $1 AND "id" = ANY($2)
	ORDER BY "id"
	FOR UPDATE;`

	queryTransactionMarkMatched = `UPDATE "transactions"
	SET
		"matchStatus" = 'matched',
		"matchId" = $3,
		"version" = "version" + 1,
		"updatedAt" = NOW()
	WHERE "clientId" = $1 AND "id" = ANY($2) AND "matchStatus" = 'unmatched';`

	queryTransactionUnmatchByMatchIDs = `UPDATE "transactions"
	SET
		"matchStatus" = 'unmatched',
		"matchId" = NULL,
		"version" = "version" + 1,
		"updatedAt" = NOW()
	WHERE "clientId" = $1 AND "matchId" = ANY($2) AND "matchStatus" = 'matched';`

	queryTransactionUnmatchAll = `UPDATE "transactions"
	SET
		"matchStatus" = 'unmatched',
		"matchId" = NULL,
		"version" = "version" + 1,
		"updatedAt" = NOW()
	WHERE "clientId" = $1 AND "matchStatus" = 'matched';`

	queryTransactionDetach = `UPDATE "transactions"
	SET
		"matchStatus" = 'unmatched',
		"matchId" = NULL,
		"version" = "version" + 1,
		"updatedAt" = NOW()
	WHERE "clientId" = $1 AND "id" = $2 AND "matchId" = $3 AND "matchStatus" = 'matched';`
)

func buildListMatchedTransactionsQuery(clientID string, matchIDs []string) (string, []any, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(transactionColumns...).
		From(`"transactions"`).
		Where(sq.Eq{`"clientId"`: clientID}).
		Where(sq.Eq{`"matchStatus"`: string(models.MatchStatusMatched)})

	if len(matchIDs) > 0 {
		query = query.Where(sq.Expr(`"matchId" = ANY(?)`, pq.Array(matchIDs)))
	}

	return query.OrderBy(`"matchId"`, `"id"`).ToSql()
}
