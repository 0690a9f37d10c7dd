package models

import "github.com/fleetops/FMS-CarBookingService/internal/domain"

// UsageRowResponse is one report line.
type UsageRowResponse struct {
	Plate      string `json:"plate"`
	Date       string `json:"date"`
	DriverName string `json:"driver_name"`
	Department string `json:"department"`
	TimeSlot   string `json:"time_slot"`
	Duration   string `json:"duration"`
	TotalMile  *int   `json:"total_mile,omitempty"`
}

// VehicleUsageResponse aggregates one vehicle.
type VehicleUsageResponse struct {
	Plate        string `json:"plate"`
	Trips        int    `json:"trips"`
	TotalMinutes int    `json:"total_minutes"`
	Duration     string `json:"duration"`
	TotalMiles   int    `json:"total_miles"`
}

// DepartmentUsageResponse aggregates one department.
type DepartmentUsageResponse struct {
	Department   string `json:"department"`
	Trips        int    `json:"trips"`
	TotalMinutes int    `json:"total_minutes"`
	Duration     string `json:"duration"`
	TotalMiles   int    `json:"total_miles"`
}

// UsageReportResponse is the full usage report of a period.
type UsageReportResponse struct {
	StartDate   string                     `json:"start_date"`
	EndDate     string                     `json:"end_date"`
	Rows        []*UsageRowResponse        `json:"rows"`
	Vehicles    []*VehicleUsageResponse    `json:"vehicles"`
	Departments []*DepartmentUsageResponse `json:"departments"`
}

// FromDomainVehicleUsage converts one vehicle aggregate.
func FromDomainVehicleUsage(v *domain.VehicleUsage) *VehicleUsageResponse {
	return &VehicleUsageResponse{
		Plate:        v.Plate,
		Trips:        v.Trips,
		TotalMinutes: v.TotalMinutes,
		Duration:     domain.FormatThaiDuration(v.TotalMinutes),
		TotalMiles:   v.TotalMiles,
	}
}

// FromDomainDepartmentUsage converts one department aggregate.
func FromDomainDepartmentUsage(d *domain.DepartmentUsage) *DepartmentUsageResponse {
	return &DepartmentUsageResponse{
		Department:   d.Department,
		Trips:        d.Trips,
		TotalMinutes: d.TotalMinutes,
		Duration:     domain.FormatThaiDuration(d.TotalMinutes),
		TotalMiles:   d.TotalMiles,
	}
}
