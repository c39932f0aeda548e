package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"bitbucket.org/Amartha/go-recon-matching/internal/models"
)

var (
	queryMatchingRuleCreate = `
		INSERT INTO "matching_rules"(
			"id", "clientId", "name", "priority", "ruleType", "isInternal", "dateMustMatch",
			"dateToleranceDays", "compareCurrency", "allowTolerance", "toleranceAmount", "isActive",
			"createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW()
		)
		RETURNING "createdAt", "updatedAt";
	`

	queryMatchingRuleUpdate = `UPDATE "matching_rules"
		SET
		  "name" = $3,
		  "priority" = $4,
		  "ruleType" = $5,
		  "isInternal" = $6,
		  "dateMustMatch" = $7,
		  "dateToleranceDays" = $8,
		  "compareCurrency" = $9,
		  "allowTolerance" = $10,
		  "toleranceAmount" = $11,
		  "isActive" = $12,
		  "updatedAt" = NOW()
		WHERE "id" = $1 AND "clientId" = $2
		RETURNING "createdAt", "updatedAt";`

	queryMatchingRuleDelete = `DELETE FROM "matching_rules" WHERE "id" = $1 AND "clientId" = $2;`

	queryMatchingRuleGetByID = `SELECT
		  "id", "clientId", "name", "priority", "ruleType", "isInternal", "dateMustMatch",
		  "dateToleranceDays", "compareCurrency", "allowTolerance", "toleranceAmount", "isActive",
		  "createdAt", "updatedAt"
		FROM "matching_rules"
		WHERE "id" = $1 AND "clientId" = $2;`
)

func buildListMatchingRuleQuery(opts models.MatchingRuleFilterOptions) (string, []any, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(
		`"id"`,
		`"clientId"`,
		`"name"`,
		`"priority"`,
		`"ruleType"`,
		`"isInternal"`,
		`"dateMustMatch"`,
		`"dateToleranceDays"`,
		`"compareCurrency"`,
		`"allowTolerance"`,
		`"toleranceAmount"`,
		`"isActive"`,
		`"createdAt"`,
		`"updatedAt"`,
	).From(`"matching_rules"`).
		Where(sq.Eq{`"clientId"`: opts.ClientID})

	if opts.ActiveOnly {
		query = query.Where(sq.Eq{`"isActive"`: true})
	}

	return query.OrderBy(`"priority" ASC`, `"id" ASC`).ToSql()
}
