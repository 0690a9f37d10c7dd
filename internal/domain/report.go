package domain

import "time"

// UsageRow is one flattened booking row used by the usage report: the
// vehicle plate, the raw slot selection and the trip mileage when the
// driver recorded it.
type UsageRow struct {
	Plate      string
	Date       time.Time
	TimeSlot   string
	DriverName string
	Department string
	TotalMile  *int
}

// VehicleUsage aggregates the report rows of one vehicle.
type VehicleUsage struct {
	Plate        string
	Trips        int
	TotalMinutes int
	TotalMiles   int
}

// DepartmentUsage aggregates the report rows of one department.
type DepartmentUsage struct {
	Department   string
	Trips        int
	TotalMinutes int
	TotalMiles   int
}
