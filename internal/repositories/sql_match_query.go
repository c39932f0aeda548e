package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"bitbucket.org/Amartha/go-recon-matching/internal/models"
)

// maxMatchesPerInsert keeps one multi row insert well under the postgres
// limit of 65535 bind parameters.
const maxMatchesPerInsert = 1000

var (
	queryMatchSelect = `SELECT
		"id", "clientId", "ruleId", "matchType", "difference", "matchedBy", "createdAt"
	FROM "matches"`

	queryMatchGetByID = queryMatchSelect + `
	WHERE "id" = $1 AND "clientId" = $2;`

	// locks the match a transaction belongs to, so membership changes of
	// one match are serialized
	queryMatchGetByTransactionIDForUpdate = `SELECT
		m."id", m."clientId", m."ruleId", m."matchType", m."difference", m."matchedBy", m."createdAt"
	FROM "matches" m
	JOIN "transactions" t ON t."matchId" = m."id" AND t."clientId" = m."clientId"
	WHERE t."id" = $1 AND m."clientId" = $2
	FOR UPDATE OF m;`

	queryMatchList = queryMatchSelect + `
	WHERE "clientId" = $1
	ORDER BY "createdAt", "id";`

	queryMatchDeleteByIDs = `DELETE FROM "matches" WHERE "clientId" = $1 AND "id" = ANY($2);`

	queryMatchDeleteAll = `DELETE FROM "matches" WHERE "clientId" = $1;`

	queryMatchUpdateDifference = `UPDATE "matches" SET "difference" = $3 WHERE "id" = $1 AND "clientId" = $2;`

	queryMatchListUnderPopulated = `SELECT m."id", COUNT(t."id") AS "memberCount"
	FROM "matches" m
	LEFT JOIN "transactions" t ON t."matchId" = m."id" AND t."matchStatus" = 'matched'
	WHERE m."clientId" = $1
	GROUP BY m."id"
	HAVING COUNT(t."id") < $2
	ORDER BY m."id";`
)

func buildInsertMatchesQuery(ins []models.CreateMatchIn) (string, []any, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Insert(`"matches"`).Columns(
		`"id"`,
		`"clientId"`,
		`"ruleId"`,
		`"matchType"`,
		`"difference"`,
		`"matchedBy"`,
		`"createdAt"`,
	)
	for _, in := range ins {
		query = query.Values(
			in.ID,
			in.ClientID,
			in.RuleID,
			string(in.MatchType),
			in.Difference,
			in.MatchedBy,
			sq.Expr("NOW()"),
		)
	}

	return query.ToSql()
}
