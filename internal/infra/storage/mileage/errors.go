package mileage

import "errors"

var (
	// ErrRecordNotFound is returned when the mileage record does not exist
	ErrRecordNotFound = errors.New("mileage.repository: record not found")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("mileage.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("mileage.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("mileage.repository: failed to scan row")
)
