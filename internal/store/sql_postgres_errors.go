package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresErrorCode returns the SQLSTATE of err when it is (or wraps) a
// PostgreSQL server error, and "" otherwise.
func postgresErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isUniqueViolation reports whether err is a unique_violation (23505).
func isUniqueViolation(err error) bool {
	return postgresErrorCode(err) == pgerrcode.UniqueViolation
}

// isUnavailable reports whether err means the database could not be reached.
//
// Matched conditions:
//   - failure to establish a connection at all (*pgconn.ConnectError);
//   - Class 08, connection exceptions;
//   - 57P01..57P03, server shutting down or not accepting connections.
func isUnavailable(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	code := postgresErrorCode(err)
	switch {
	case code == "":
		return false
	case pgerrcode.IsConnectionException(code):
		return true
	case code == pgerrcode.AdminShutdown,
		code == pgerrcode.CrashShutdown,
		code == pgerrcode.CannotConnectNow:
		return true
	}

	return false
}

// wrapDBError joins a driver error with a store sentinel. Connectivity
// failures are reported as [ErrDatabaseUnavailable] regardless of op.
func wrapDBError(op, err error) error {
	if isUnavailable(err) {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}
