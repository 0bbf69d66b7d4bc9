package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an INSERT or UPDATE of an account
	// hits the UNIQUE constraint on its login handle (username or
	// employee_username).
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrAirlineNotFound is returned when no airline matches the lookup.
	ErrAirlineNotFound = errors.New("airline was not found")

	// ErrTravelerNotFound is returned when no traveler matches the lookup.
	ErrTravelerNotFound = errors.New("user was not found")

	// ErrFlightNotFound is returned when no flight matches the lookup, or an
	// owner-scoped mutation matched zero rows, or a booking references a
	// flight that no longer exists.
	ErrFlightNotFound = errors.New("flight was not found")

	// ErrBookingNotFound is returned when no booking of the traveler matches.
	ErrBookingNotFound = errors.New("booking was not found")

	// ErrPhotoTooLarge is returned by the photo storage when an upload
	// exceeds the configured size limit.
	ErrPhotoTooLarge = errors.New("photo is too large")

	// ErrInvalidPhotoName is returned when a stored photo name would escape
	// the photo directory.
	ErrInvalidPhotoName = errors.New("invalid photo name")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
