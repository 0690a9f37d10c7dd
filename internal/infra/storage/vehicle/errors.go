package vehicle

import "errors"

var (
	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("vehicle.repository: vehicle not found")

	// ErrPlateTaken is returned when another vehicle already carries the plate
	ErrPlateTaken = errors.New("vehicle.repository: plate already registered")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("vehicle.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("vehicle.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("vehicle.repository: failed to scan row")
)
