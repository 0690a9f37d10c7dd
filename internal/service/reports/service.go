package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	"github.com/fleetops/FMS-CarBookingService/internal/service/reports/models"
)

// Service builds the vehicle usage report of a period: one line per
// booking plus per-vehicle and per-department totals. Slot sets are
// converted to minutes with the sentinel labels counting as zero.
type Service struct {
	bookingRepo BookingRepository
	catalog     *domain.SlotCatalog
	fontPath    string
	logger      Logger
}

// NewService creates the reports service. fontPath points to a TTF with
// Thai glyphs for the PDF export; empty falls back to the core font.
func NewService(bookingRepo BookingRepository, catalog *domain.SlotCatalog, fontPath string, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		fontPath:    fontPath,
		logger:      logger,
	}
}

// Usage builds the report for [startDate, endDate].
func (s *Service) Usage(ctx context.Context, startDate, endDate time.Time) (*models.UsageReportResponse, error) {
	if startDate.IsZero() || endDate.IsZero() || endDate.Before(startDate) {
		return nil, ErrInvalidPeriod
	}

	s.logger.Info("Usage: building report %s..%s",
		startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	rows, err := s.bookingRepo.ListUsageRows(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error("Usage: repository error: %v", err)
		return nil, fmt.Errorf("%w: Usage - repository error: %v", ErrInternal, err)
	}

	byVehicle := make(map[string]*domain.VehicleUsage)
	byDepartment := make(map[string]*domain.DepartmentUsage)
	outRows := make([]*models.UsageRowResponse, 0, len(rows))

	for _, row := range rows {
		minutes := domain.SlotSetMinutes(row.TimeSlot)

		miles := 0
		if row.TotalMile != nil {
			miles = *row.TotalMile
		}

		vu := byVehicle[row.Plate]
		if vu == nil {
			vu = &domain.VehicleUsage{Plate: row.Plate}
			byVehicle[row.Plate] = vu
		}
		vu.Trips++
		vu.TotalMinutes += minutes
		vu.TotalMiles += miles

		department := row.Department
		if department == "" {
			department = "-"
		}
		du := byDepartment[department]
		if du == nil {
			du = &domain.DepartmentUsage{Department: department}
			byDepartment[department] = du
		}
		du.Trips++
		du.TotalMinutes += minutes
		du.TotalMiles += miles

		outRows = append(outRows, &models.UsageRowResponse{
			Plate:      row.Plate,
			Date:       row.Date.Format(domain.DateFormat),
			DriverName: row.DriverName,
			Department: department,
			TimeSlot:   domain.MergeSlotRanges(s.catalog, row.TimeSlot),
			Duration:   domain.FormatThaiDuration(minutes),
			TotalMile:  row.TotalMile,
		})
	}

	vehicles := make([]*models.VehicleUsageResponse, 0, len(byVehicle))
	for _, vu := range byVehicle {
		vehicles = append(vehicles, models.FromDomainVehicleUsage(vu))
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].Plate < vehicles[j].Plate })

	departments := make([]*models.DepartmentUsageResponse, 0, len(byDepartment))
	for _, du := range byDepartment {
		departments = append(departments, models.FromDomainDepartmentUsage(du))
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].Department < departments[j].Department })

	return &models.UsageReportResponse{
		StartDate:   startDate.Format(domain.DateFormat),
		EndDate:     endDate.Format(domain.DateFormat),
		Rows:        outRows,
		Vehicles:    vehicles,
		Departments: departments,
	}, nil
}
