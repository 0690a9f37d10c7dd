package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mileage is a personal odometer record kept outside the booking flow
// (private vehicle used for company business).
type Mileage struct {
	ID           int64
	UserID       uuid.UUID
	EmployeeName string
	Date         time.Time
	Location     string
	StartMile    int
	EndMile      int
	Remark       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TotalMile returns the driven distance of the record.
func (m *Mileage) TotalMile() int {
	return m.EndMile - m.StartMile
}
