package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a session subject does not match any
	// user, or a call is inserted for a user that no longer exists.
	ErrUserNotFound = errors.New("user was not found")

	// ErrCallNotSaved is returned when the INSERT of a call completes without
	// error but affects no rows.
	ErrCallNotSaved = errors.New("call was not saved")

	// ErrCallAlreadyExists is returned when the generated call id collides
	// with an existing row.
	ErrCallAlreadyExists = errors.New("call already exists")

	// ErrCallNotFound is returned when no call matches the requested id.
	ErrCallNotFound = errors.New("call was not found")

	// ErrReplayNotFound is returned by [ReplayStorage.GetReplay] when no
	// response is remembered for the key.
	ErrReplayNotFound = errors.New("replay response was not found")

	// ErrReplayInFlight is returned by [ReplayStorage.GetReplay] while the
	// request that reserved the key has not finished.
	ErrReplayInFlight = errors.New("replay response is in flight")

	// ErrUnsupportedDSN is returned when the database DSN scheme selects no
	// known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
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

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
