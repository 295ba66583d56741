package store

import (
	"fmt"

	"github.com/MKhiriev/rewards-backend/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	selectNow = `SELECT NOW();`

	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	countUsers = `SELECT COUNT(*) FROM users;`

	listSettings = `SELECT key, COALESCE(value, '')
    FROM settings
    ORDER BY key;`

	upsertSetting = `INSERT INTO settings (key, value)
    VALUES ($1, $2)
    ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`
)

// userColumns is the public column set; password_hash is deliberately absent
// from list queries.
var userColumns = []string{"id", "name", "email", "created_at"}

const userReturning = "RETURNING id, name, email, password_hash, created_at"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListUsersQuery builds the newest-first user listing capped at limit.
func buildListUsersQuery(limit int) (string, []any, error) {
	if limit <= 0 {
		return "", nil, fmt.Errorf("%w: non-positive limit %d", ErrBuildingSQLQuery, limit)
	}

	query, args, err := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateUserQuery builds an UPDATE touching only the non-nil fields of
// update. update.Password must already hold the hash.
func buildUpdateUserQuery(id int64, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update(models.User{}.TableName())
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Password != nil {
		builder = builder.Set("password_hash", *update.Password)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix(userReturning).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
