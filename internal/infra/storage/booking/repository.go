package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	"github.com/fleetops/FMS-CarBookingService/pkg/dbmetrics"
	"github.com/fleetops/FMS-CarBookingService/pkg/psqlbuilder"
)

const uniqueViolation = pq.ErrorCode("23505")

// Repository persists bookings together with their per-slot rows.
//
// Every booking keeps its selection twice: the raw comma-joined string on
// the bookings row (what the user picked, rendered back verbatim) and one
// booking_slots row per label. The unique index on
// booking_slots(vehicle_id, date, slot_label) is what actually serializes
// double-booking under concurrency.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts the booking and its slot rows.
// If the context carries an active transaction it is used; otherwise the
// statements run on the pool. Creation is expected to run inside a
// serializable transaction started by the usecase so that the availability
// read and the insert see the same state.
//
// Returns ErrSlotTaken when another booking already holds one of the slots.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"user_email",
			"vehicle_id",
			"driver_name",
			"date",
			"time_slot",
			"destination",
			"reason",
		).
		Values(
			booking.UserID,
			booking.UserEmail,
			booking.VehicleID,
			booking.DriverName,
			booking.Date,
			booking.TimeSlot,
			booking.Destination,
			booking.Reason,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if err := r.insertSlots(ctx, executor, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// Update rewrites the booking fields and replaces its slot rows.
// Runs inside the caller's transaction so the delete and re-insert of the
// slot rows are atomic. Returns ErrSlotTaken when the new selection collides
// with another booking.
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("vehicle_id", booking.VehicleID).
		Set("driver_name", booking.DriverName).
		Set("date", booking.Date).
		Set("time_slot", booking.TimeSlot).
		Set("destination", booking.Destination).
		Set("reason", booking.Reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	if err := r.deleteSlots(ctx, executor, booking.ID); err != nil {
		return err
	}

	return r.insertSlots(ctx, executor, booking)
}

// Delete removes the booking in a single statement. The slot rows
// follow through the ON DELETE CASCADE on booking_slots.booking_id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// GetByID fetches one booking with its vehicle plate.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("vehicles v ON v.id = b.vehicle_id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.UserEmail,
		&booking.VehicleID,
		&booking.DriverName,
		&booking.Date,
		&booking.TimeSlot,
		&booking.Destination,
		&booking.Reason,
		&booking.VehiclePlate,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// GetByVehicleAndDate lists the bookings of one vehicle on one date,
// ordered by creation so that availability resolution stays last-writer-wins.
//
// Inside a transaction the rows are locked with FOR UPDATE so a concurrent
// creation for the same vehicle and date waits for the conflict check.
func (r *Repository) GetByVehicleAndDate(ctx context.Context, vehicleID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("vehicles v ON v.id = b.vehicle_id").
		Where(squirrel.Eq{"b.vehicle_id": vehicleID, "b.date": date}).
		OrderBy("b.created_at ASC, b.id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicleAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicleAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListWithFilter lists bookings with optional vehicle, user and period
// filters. Newest dates come first; within a date the bookings keep their
// creation order.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("vehicles v ON v.id = b.vehicle_id")

	if filter.VehicleID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.vehicle_id": *filter.VehicleID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.user_id": *filter.UserID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"b.date": *filter.EndDate})
	}

	selectBuilder = selectBuilder.OrderBy("b.date DESC, b.created_at ASC, b.id ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListUsageRows returns the flattened report rows for a period: one row per
// booking with the driver's department and the recorded trip mileage, when
// present. Used by the usage report aggregation.
func (r *Repository) ListUsageRows(ctx context.Context, startDate, endDate time.Time) ([]*domain.UsageRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"v.plate",
		"b.date",
		"b.time_slot",
		"b.driver_name",
		"COALESCE(p.department, '')",
		"t.total_mile",
	).
		From("bookings b").
		Join("vehicles v ON v.id = b.vehicle_id").
		LeftJoin("profiles p ON p.id = b.user_id").
		LeftJoin("trip_miles t ON t.booking_id = b.id").
		Where(squirrel.GtOrEq{"b.date": startDate}).
		Where(squirrel.LtOrEq{"b.date": endDate}).
		OrderBy("v.plate ASC, b.date ASC, b.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUsageRows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUsageRows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	usage := make([]*domain.UsageRow, 0)
	for rows.Next() {
		var row domain.UsageRow
		var totalMile sql.NullInt64

		err := rows.Scan(
			&row.Plate,
			&row.Date,
			&row.TimeSlot,
			&row.DriverName,
			&row.Department,
			&totalMile,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListUsageRows - scan row: %v", ErrScanRow, err)
		}

		if totalMile.Valid {
			miles := int(totalMile.Int64)
			row.TotalMile = &miles
		}

		usage = append(usage, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUsageRows - rows error: %v", ErrScanRow, err)
	}

	return usage, nil
}

// bookingColumns is the shared select list for booking queries with the
// vehicles join.
var bookingColumns = []string{
	"b.id",
	"b.user_id",
	"b.user_email",
	"b.vehicle_id",
	"b.driver_name",
	"b.date",
	"b.time_slot",
	"b.destination",
	"b.reason",
	"v.plate",
	"b.created_at",
	"b.updated_at",
}

// insertSlots writes one booking_slots row per selected label. A unique
// violation on (vehicle_id, date, slot_label) maps to ErrSlotTaken.
func (r *Repository) insertSlots(ctx context.Context, executor DBExecutor, booking *domain.Booking) error {
	slots := booking.Slots()
	if len(slots) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("booking_slots").
		Columns("booking_id", "vehicle_id", "date", "slot_label")

	for _, label := range slots {
		insertBuilder = insertBuilder.Values(booking.ID, booking.VehicleID, booking.Date, label)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertSlots - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: insertSlots - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) deleteSlots(ctx context.Context, executor DBExecutor, bookingID int64) error {
	query, args, err := psqlbuilder.Delete("booking_slots").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: deleteSlots - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: deleteSlots - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanBookings reads joined booking rows into domain bookings.
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.UserEmail,
			&booking.VehicleID,
			&booking.DriverName,
			&booking.Date,
			&booking.TimeSlot,
			&booking.Destination,
			&booking.Reason,
			&booking.VehiclePlate,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
