package maintenance

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	"github.com/fleetops/FMS-CarBookingService/pkg/dbmetrics"
	"github.com/fleetops/FMS-CarBookingService/pkg/psqlbuilder"
)

// Repository persists per-vehicle service thresholds and the latest
// recorded odometer value. One row per vehicle, written with upserts.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a maintenance repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertThresholds sets the next service mileage and the alert window of
// one vehicle.
func (r *Repository) UpsertThresholds(ctx context.Context, vehicleID int64, nextServiceMileage, alertBeforeMileage int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicle_maintenance").
		Columns("vehicle_id", "next_service_mileage", "alert_before_mileage").
		Values(vehicleID, nextServiceMileage, alertBeforeMileage).
		Suffix("ON CONFLICT (vehicle_id) DO UPDATE SET next_service_mileage = EXCLUDED.next_service_mileage, alert_before_mileage = EXCLUDED.alert_before_mileage, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertThresholds - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertThresholds - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// UpsertCurrentMileage records the latest odometer value of one vehicle.
// Called when a trip's end mile comes in.
func (r *Repository) UpsertCurrentMileage(ctx context.Context, vehicleID int64, currentMileage int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicle_mileage_log").
		Columns("vehicle_id", "current_mileage").
		Values(vehicleID, currentMileage).
		Suffix("ON CONFLICT (vehicle_id) DO UPDATE SET current_mileage = GREATEST(vehicle_mileage_log.current_mileage, EXCLUDED.current_mileage), updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertCurrentMileage - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertCurrentMileage - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByVehicleID fetches the maintenance state of one vehicle.
func (r *Repository) GetByVehicleID(ctx context.Context, vehicleID int64) (*domain.Maintenance, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder().
		Where(squirrel.Eq{"m.vehicle_id": vehicleID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicleID - build select query: %v", ErrBuildQuery, err)
	}

	var record domain.Maintenance
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.VehicleID,
		&record.NextServiceMileage,
		&record.AlertBeforeMileage,
		&record.CurrentMileage,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicleID - scan record: %v", ErrScanRow, err)
	}

	record.UpdatedAt = updatedAt.Time

	return &record, nil
}

// List returns the maintenance state of every vehicle that has thresholds
// configured, ordered by vehicle.
func (r *Repository) List(ctx context.Context) ([]*domain.Maintenance, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder().
		OrderBy("m.vehicle_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.Maintenance, 0)
	for rows.Next() {
		var record domain.Maintenance
		var updatedAt sql.NullTime

		err := rows.Scan(
			&record.VehicleID,
			&record.NextServiceMileage,
			&record.AlertBeforeMileage,
			&record.CurrentMileage,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		record.UpdatedAt = updatedAt.Time

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

func selectBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"m.vehicle_id",
		"m.next_service_mileage",
		"m.alert_before_mileage",
		"COALESCE(l.current_mileage, 0)",
		"m.updated_at",
	).
		From("vehicle_maintenance m").
		LeftJoin("vehicle_mileage_log l ON l.vehicle_id = m.vehicle_id")
}
