package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash, name, email)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, password_hash, name, email, is_active, created_at, updated_at, last_login_at;`

	findUserByUsername = `SELECT id, username, password_hash, name, email, is_active, created_at, updated_at, last_login_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, password_hash, name, email, is_active, created_at, updated_at, last_login_at
    FROM users
    WHERE id = $1;`

	touchLastLogin = `UPDATE users
    SET last_login_at = NOW(), updated_at = NOW()
    WHERE id = $1;`
)

// buildUserStatsQuery builds the aggregate query feeding the dashboard
// metrics: total accounts, active accounts, and accounts created since the
// given cutoff.
func buildUserStatsQuery(since time.Time) (string, []any, error) {
	return sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE is_active)",
		).
		Column(sq.Expr("COUNT(*) FILTER (WHERE created_at >= ?)", since)).
		From("users").
		ToSql()
}
