package domain

import "time"

// Vehicle is one car of the company fleet.
type Vehicle struct {
	ID        int64
	Plate     string
	Model     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Maintenance holds the service thresholds of one vehicle together with
// its latest recorded odometer value.
type Maintenance struct {
	VehicleID          int64
	NextServiceMileage int
	AlertBeforeMileage int
	CurrentMileage     int
	UpdatedAt          time.Time
}

// RemainingMileage returns the distance left until the next service.
func (m *Maintenance) RemainingMileage() int {
	return m.NextServiceMileage - m.CurrentMileage
}

// ServiceDue reports whether the vehicle is inside its alert window.
func (m *Maintenance) ServiceDue() bool {
	return m.RemainingMileage() <= m.AlertBeforeMileage
}
