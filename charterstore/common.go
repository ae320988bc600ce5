package charterstore

import (
	"errors"
)

var (
	// ErrEmptyTableNameSupplied is returned when an engine is configured with an empty table name.
	ErrEmptyTableNameSupplied = errors.New("empty journal table name supplied")

	// ErrNilDatabaseConnection is returned when an engine is constructed without a database connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrSequenceConflict is returned when a conditional append affected fewer rows than expected,
	// meaning another writer advanced the stream first.
	ErrSequenceConflict = errors.New("sequence conflict, no rows were affected")

	// ErrBuildingQueryFailed is returned when SQL query construction fails.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrQueryingRecordsFailed is returned when the select query fails to execute.
	ErrQueryingRecordsFailed = errors.New("querying records failed")

	// ErrScanningDBRowFailed is returned when a result row cannot be scanned.
	ErrScanningDBRowFailed = errors.New("scanning database row failed")

	// ErrBuildingRecordFailed is returned when a queried row cannot be turned into a Record.
	ErrBuildingRecordFailed = errors.New("building record from database row failed")

	// ErrAppendingRecordsFailed is returned when the conditional insert fails to execute.
	ErrAppendingRecordsFailed = errors.New("appending records failed")

	// ErrGettingRowsAffectedFailed is returned when the affected row count cannot be read.
	ErrGettingRowsAffectedFailed = errors.New("getting rows affected count failed")
)

// MaxSequenceUint is a type alias for uint, representing the highest sequence number
// observed for a dynamic charter stream.
type MaxSequenceUint = uint
