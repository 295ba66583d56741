package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/schema"
	"github.com/MKhiriev/rewards-backend/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database handle and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureTable creates the "users" table if it does not exist.
func (r *userRepository) EnsureTable(ctx context.Context) error {
	conn, err := r.db.conn()
	if err != nil {
		return err
	}

	if _, err = conn.ExecContext(ctx, schema.Users()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.EnsureTable").Msg("error creating users table")
		return wrapDBError(ErrExecutingStatement, err)
	}
	return nil
}

// ListUsers returns at most limit users, newest first. Password hashes are
// not selected.
func (r *userRepository) ListUsers(ctx context.Context, limit int) ([]models.User, error) {
	log := logger.FromContext(ctx)

	conn, err := r.db.conn()
	if err != nil {
		return nil, err
	}

	query, args, err := buildListUsersQuery(limit)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error querying users")
		return nil, wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, limit)
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user row")
			return nil, wrapDBError(ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating user rows")
		return nil, wrapDBError(ErrScanningRows, err)
	}

	return users, nil
}

// CreateUser persists a new user record and returns it with the
// server-assigned ID and CreatedAt.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → joined with [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	conn, err := r.db.conn()
	if err != nil {
		return models.User{}, err
	}

	row := conn.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash)

	var created models.User
	if err = row.Scan(&created.ID, &created.Name, &created.Email, &created.PasswordHash, &created.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, wrapDBError(ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user with the given email, password hash
// included.
//
// Error handling:
//   - no matching row → [ErrUserNotFound].
//   - any other driver-level error → joined with [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	conn, err := r.db.conn()
	if err != nil {
		return models.User{}, err
	}

	var found models.User
	err = conn.QueryRowContext(ctx, findUserByEmail, email).
		Scan(&found.ID, &found.Name, &found.Email, &found.PasswordHash, &found.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error selecting user")
		return models.User{}, wrapDBError(ErrExecutingQuery, err)
	}

	return found, nil
}

// UpdateUser applies the non-nil fields of update to the user with the given
// id and returns the updated record.
//
// Error handling:
//   - empty update → [ErrNothingToUpdate], no statement is sent.
//   - no row with id → [ErrUserNotFound].
//   - new email already taken → [ErrEmailAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(id, update)
	if err != nil {
		return models.User{}, err
	}

	conn, err := r.db.conn()
	if err != nil {
		return models.User{}, err
	}

	var updated models.User
	err = conn.QueryRowContext(ctx, query, args...).
		Scan(&updated.ID, &updated.Name, &updated.Email, &updated.PasswordHash, &updated.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case isUniqueViolation(err):
		return models.User{}, ErrEmailAlreadyExists
	case err != nil:
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("id", id).Msg("error updating user")
		return models.User{}, wrapDBError(ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteUser removes the user with the given id and reports whether a row
// was actually deleted.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) (bool, error) {
	conn, err := r.db.conn()
	if err != nil {
		return false, err
	}

	result, err := conn.ExecContext(ctx, deleteUser, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.DeleteUser").Int64("id", id).Msg("error deleting user")
		return false, wrapDBError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, wrapDBError(ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// CountUsers returns the total number of users.
func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	conn, err := r.db.conn()
	if err != nil {
		return 0, err
	}

	var count int64
	if err = conn.QueryRowContext(ctx, countUsers).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.CountUsers").Msg("error counting users")
		return 0, wrapDBError(ErrExecutingQuery, err)
	}

	return count, nil
}
