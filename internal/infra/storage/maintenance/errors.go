package maintenance

import "errors"

var (
	// ErrNotFound is returned when the vehicle has no maintenance row
	ErrNotFound = errors.New("maintenance.repository: maintenance record not found")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("maintenance.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("maintenance.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("maintenance.repository: failed to scan row")
)
