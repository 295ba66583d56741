package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDatabaseNotConfigured is returned by every database-backed call when
	// the process was started without DATABASE_URL.
	ErrDatabaseNotConfigured = errors.New("DATABASE_URL not configured")

	// ErrDatabaseUnavailable is returned when the database cannot be reached
	// (connection exceptions, server not accepting connections).
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// ErrEmailAlreadyExists is returned when an INSERT or UPDATE of a user
	// violates the unique constraint on the email column.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query targeting a single user by id
	// or email produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrNothingToUpdate is returned when an update carries no fields.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are returned (joined with the
// driver error) by repository methods when a SQL-level operation fails before
// any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a statement
	// with a RETURNING clause fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML or DDL statement
	// without a result set fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
