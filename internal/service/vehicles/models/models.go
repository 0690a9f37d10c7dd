package models

import (
	"time"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

// VehicleResponse is one fleet vehicle.
type VehicleResponse struct {
	ID        int64     `json:"id"`
	Plate     string    `json:"plate"`
	Model     string    `json:"model"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VehicleListResponse is the fleet list.
type VehicleListResponse struct {
	Vehicles []*VehicleResponse `json:"vehicles"`
	Total    int                `json:"total"`
}

// SaveVehicleRequest carries the editable vehicle fields.
type SaveVehicleRequest struct {
	Plate  string
	Model  string
	Active bool
}

// MaintenanceResponse is the maintenance state of one vehicle, joined with
// its plate for the admin screen.
type MaintenanceResponse struct {
	VehicleID          int64     `json:"vehicle_id"`
	Plate              string    `json:"plate"`
	NextServiceMileage int       `json:"next_service_mileage"`
	AlertBeforeMileage int       `json:"alert_before_mileage"`
	CurrentMileage     int       `json:"current_mileage"`
	RemainingMileage   int       `json:"remaining_mileage"`
	ServiceDue         bool      `json:"service_due"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// MaintenanceListResponse is the maintenance overview.
type MaintenanceListResponse struct {
	Records []*MaintenanceResponse `json:"records"`
	Total   int                    `json:"total"`
}

// SetMaintenanceRequest carries the threshold fields.
type SetMaintenanceRequest struct {
	VehicleID          int64
	NextServiceMileage int
	AlertBeforeMileage int
}

// FromDomainVehicle converts a domain vehicle.
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:        v.ID,
		Plate:     v.Plate,
		Model:     v.Model,
		Active:    v.Active,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// FromDomainVehicleList converts a vehicle slice.
func FromDomainVehicleList(vehicles []*domain.Vehicle) *VehicleListResponse {
	out := make([]*VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromDomainVehicle(v))
	}
	return &VehicleListResponse{Vehicles: out, Total: len(out)}
}

// FromDomainMaintenance converts a maintenance record with its plate.
func FromDomainMaintenance(m *domain.Maintenance, plate string) *MaintenanceResponse {
	return &MaintenanceResponse{
		VehicleID:          m.VehicleID,
		Plate:              plate,
		NextServiceMileage: m.NextServiceMileage,
		AlertBeforeMileage: m.AlertBeforeMileage,
		CurrentMileage:     m.CurrentMileage,
		RemainingMileage:   m.RemainingMileage(),
		ServiceDue:         m.ServiceDue(),
		UpdatedAt:          m.UpdatedAt,
	}
}
