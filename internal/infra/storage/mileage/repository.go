package mileage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	"github.com/fleetops/FMS-CarBookingService/pkg/dbmetrics"
	"github.com/fleetops/FMS-CarBookingService/pkg/psqlbuilder"
)

// Repository persists trip odometer records attached to bookings and the
// personal mileage log kept outside the booking flow.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a mileage repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertTripMile records the odometer readings of one booking. A second
// submission for the same booking overwrites the first.
func (r *Repository) UpsertTripMile(ctx context.Context, trip *domain.TripMile) (*domain.TripMile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	trip.TotalMile = trip.EndMile - trip.StartMile

	query, args, err := psqlbuilder.Insert("trip_miles").
		Columns("booking_id", "start_mile", "end_mile", "total_mile").
		Values(trip.BookingID, trip.StartMile, trip.EndMile, trip.TotalMile).
		Suffix("ON CONFLICT (booking_id) DO UPDATE SET start_mile = EXCLUDED.start_mile, end_mile = EXCLUDED.end_mile, total_mile = EXCLUDED.total_mile").
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertTripMile - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&trip.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertTripMile - execute insert: %v", ErrExecQuery, err)
	}

	trip.CreatedAt = createdAt.Time

	return trip, nil
}

// GetTripMilesByBookingIDs fetches the trip records of a booking list,
// keyed by booking id. Bookings without a record are simply absent.
func (r *Repository) GetTripMilesByBookingIDs(ctx context.Context, bookingIDs []int64) (map[int64]*domain.TripMile, error) {
	trips := make(map[int64]*domain.TripMile)
	if len(bookingIDs) == 0 {
		return trips, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "start_mile", "end_mile", "total_mile", "created_at").
		From("trip_miles").
		Where(squirrel.Eq{"booking_id": bookingIDs}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTripMilesByBookingIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTripMilesByBookingIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var trip domain.TripMile
		var createdAt sql.NullTime

		err := rows.Scan(
			&trip.ID,
			&trip.BookingID,
			&trip.StartMile,
			&trip.EndMile,
			&trip.TotalMile,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetTripMilesByBookingIDs - scan row: %v", ErrScanRow, err)
		}

		trip.CreatedAt = createdAt.Time
		trips[trip.BookingID] = &trip
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTripMilesByBookingIDs - rows error: %v", ErrScanRow, err)
	}

	return trips, nil
}

// CreateMileage inserts a personal mileage record.
func (r *Repository) CreateMileage(ctx context.Context, record *domain.Mileage) (*domain.Mileage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("mileages").
		Columns("user_id", "employee_name", "date", "location", "start_mile", "end_mile", "remark").
		Values(record.UserID, record.EmployeeName, record.Date, record.Location, record.StartMile, record.EndMile, record.Remark).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateMileage - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&record.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateMileage - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return record, nil
}

// GetMileageByID fetches one personal mileage record.
func (r *Repository) GetMileageByID(ctx context.Context, id int64) (*domain.Mileage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(mileageColumns...).
		From("mileages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetMileageByID - build select query: %v", ErrBuildQuery, err)
	}

	var record domain.Mileage
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.UserID,
		&record.EmployeeName,
		&record.Date,
		&record.Location,
		&record.StartMile,
		&record.EndMile,
		&record.Remark,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetMileageByID - scan record: %v", ErrScanRow, err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return &record, nil
}

// ListMileages lists personal mileage records, newest date first.
// A nil userID lists everyone (admin view).
func (r *Repository) ListMileages(ctx context.Context, userID *uuid.UUID) ([]*domain.Mileage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(mileageColumns...).
		From("mileages").
		OrderBy("date DESC, id DESC")

	if userID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *userID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListMileages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListMileages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.Mileage, 0)
	for rows.Next() {
		var record domain.Mileage
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.EmployeeName,
			&record.Date,
			&record.Location,
			&record.StartMile,
			&record.EndMile,
			&record.Remark,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListMileages - scan row: %v", ErrScanRow, err)
		}

		record.CreatedAt = createdAt.Time
		record.UpdatedAt = updatedAt.Time

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListMileages - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// UpdateMileage rewrites a personal mileage record.
func (r *Repository) UpdateMileage(ctx context.Context, record *domain.Mileage) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("mileages").
		Set("employee_name", record.EmployeeName).
		Set("date", record.Date).
		Set("location", record.Location).
		Set("start_mile", record.StartMile).
		Set("end_mile", record.EndMile).
		Set("remark", record.Remark).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": record.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateMileage - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateMileage - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateMileage - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// DeleteMileage removes a personal mileage record.
func (r *Repository) DeleteMileage(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("mileages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteMileage - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteMileage - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteMileage - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

var mileageColumns = []string{
	"id",
	"user_id",
	"employee_name",
	"date",
	"location",
	"start_mile",
	"end_mile",
	"remark",
	"created_at",
	"updated_at",
}
