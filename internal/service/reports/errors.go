package reports

import "errors"

var (
	// ErrInvalidPeriod is returned when the report period is malformed
	ErrInvalidPeriod = errors.New("reports.service: invalid report period")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("reports.service: internal error")
)
