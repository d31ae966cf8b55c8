package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBankNotFound is returned when no bank is stored under the requested
	// SWIFT code.
	ErrBankNotFound = errors.New("bank not found")

	// ErrBankAlreadyExists is returned when a bank with the same SWIFT code is
	// already stored.
	ErrBankAlreadyExists = errors.New("bank already exists")

	// ErrCountryNotFound is returned when no country is stored under the
	// requested ISO2 code.
	ErrCountryNotFound = errors.New("country not found")

	// ErrCountryAlreadyExists is returned when a country with the same ISO2
	// code is already stored.
	ErrCountryAlreadyExists = errors.New("country already exists")

	// ErrTransient wraps failures that may succeed when retried: lost
	// connections, timeouts, deadlocks or a busy database file.
	ErrTransient = errors.New("transient storage failure")

	// ErrUnknownDriver is returned by NewStorages for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
