package store

import (
	"github.com/Masterminds/squirrel"
	"github.com/complyra/claimshield/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, role)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, role, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, role, created_at
    FROM users
    WHERE email = $1;`

	saveClaim = `INSERT INTO claims (user_id, insurance_company, bill_amount, appeal_letter)
    VALUES ($1, $2, $3, $4)
    RETURNING claim_id, user_id, insurance_company, bill_amount, appeal_letter, status, created_at;`

	summarizeTotals = `SELECT COUNT(*), COALESCE(SUM(bill_amount), 0)
    FROM claims;`

	summarizePerCompany = `SELECT insurance_company, COUNT(*), COALESCE(SUM(bill_amount), 0)
    FROM claims
    GROUP BY insurance_company
    ORDER BY COALESCE(SUM(bill_amount), 0) DESC;`
)

// psql is the statement builder configured for Postgres-style $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildListClaimsQuery builds the claim-history SELECT for the given filter.
//
// A zero filter.UserID yields the unfiltered (admin) variant. A zero Limit
// leaves the result set unbounded, matching the hosted-table original; a
// non-zero Limit/Offset pages the result. Rows are always ordered newest
// first.
func buildListClaimsQuery(filter models.ClaimFilter) (string, []any, error) {
	q := psql.
		Select("claim_id", "user_id", "insurance_company", "bill_amount", "appeal_letter", "status", "created_at").
		From(models.Claim{}.TableName()).
		OrderBy("created_at DESC")

	if filter.UserID != 0 {
		q = q.Where(squirrel.Eq{"user_id": filter.UserID})
	}

	if filter.Limit != 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset != 0 {
		q = q.Offset(filter.Offset)
	}

	return q.ToSql()
}
