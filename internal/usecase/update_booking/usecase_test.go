package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

type fakeBookingRepo struct {
	existing    *domain.Booking
	getErr      error
	dayBookings []*domain.Booking
	updateErr   error
	updated     *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.existing, f.getErr
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = booking
	return nil
}

func (f *fakeBookingRepo) GetByVehicleAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.dayBookings, nil
}

type fakeVehicleRepo struct {
	vehicle *domain.Vehicle
	err     error
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, _ int64) (*domain.Vehicle, error) {
	return f.vehicle, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeCache struct {
	keys []string
}

func (f *fakeCache) Invalidate(_ context.Context, vehicleID int64, date time.Time) {
	f.keys = append(f.keys, date.Format(domain.DateFormat))
	_ = vehicleID
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var ownerID = uuid.MustParse("5f0f6ab5-4c2e-4888-9aeb-0d66f6b07d3f")

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:         42,
		UserID:     ownerID,
		VehicleID:  7,
		DriverName: "สมชาย ใจดี",
		Date:       time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		TimeSlot:   "08:00-10:00, 10:01-12:00",
		CreatedAt:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func ownerRequest() *Request {
	return &Request{
		BookingID:  42,
		CallerID:   ownerID,
		CallerRole: domain.RoleUser,
		VehicleID:  7,
		DriverName: "สมชาย ใจดี",
		Date:       time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		Slots:      []string{"08:00-10:00", "10:01-12:00", "13:00-15:00"},
	}
}

func newUseCase(br *fakeBookingRepo, vr *fakeVehicleRepo, c *fakeCache) *UseCase {
	return NewUseCase(br, vr, fakeTxManager{}, c, domain.CatalogCoarse, nopLogger{})
}

func TestUpdateBooking_KeepingOwnSlotsPasses(t *testing.T) {
	// The day's holds include the booking being edited. The pre-check must
	// exclude it, otherwise extending a booking would always conflict with
	// itself.
	existing := existingBooking()
	br := &fakeBookingRepo{
		existing:    existing,
		dayBookings: []*domain.Booking{existing},
	}
	vr := &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Plate: "กข 1234", Active: true}}

	uc := newUseCase(br, vr, &fakeCache{})

	resp, err := uc.Execute(context.Background(), ownerRequest())
	require.NoError(t, err)

	assert.Equal(t, "08:00-10:00, 10:01-12:00, 13:00-15:00", resp.TimeSlot)
	assert.Equal(t, "08:00-15:00", resp.TimeSlotDisplay)
	assert.Equal(t, existing.CreatedAt, resp.CreatedAt)
}

func TestUpdateBooking_ConflictWithAnotherBooking(t *testing.T) {
	existing := existingBooking()
	other := &domain.Booking{ID: 55, DriverName: "สมหญิง", VehicleID: 7, TimeSlot: "13:00-15:00"}
	br := &fakeBookingRepo{
		existing:    existing,
		dayBookings: []*domain.Booking{existing, other},
	}
	vr := &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Active: true}}

	uc := newUseCase(br, vr, &fakeCache{})

	_, err := uc.Execute(context.Background(), ownerRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, br.updated)
}

func TestUpdateBooking_AccessControl(t *testing.T) {
	t.Run("stranger denied", func(t *testing.T) {
		br := &fakeBookingRepo{existing: existingBooking()}
		uc := newUseCase(br, &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Active: true}}, &fakeCache{})

		req := ownerRequest()
		req.CallerID = uuid.New()

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin allowed", func(t *testing.T) {
		existing := existingBooking()
		br := &fakeBookingRepo{existing: existing, dayBookings: []*domain.Booking{existing}}
		uc := newUseCase(br, &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Active: true}}, &fakeCache{})

		req := ownerRequest()
		req.CallerID = uuid.New()
		req.CallerRole = domain.RoleAdmin

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestUpdateBooking_OwnerUnchanged(t *testing.T) {
	// An admin editing someone's booking must not take it over.
	existing := existingBooking()
	br := &fakeBookingRepo{existing: existing, dayBookings: []*domain.Booking{existing}}
	uc := newUseCase(br, &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Active: true}}, &fakeCache{})

	req := ownerRequest()
	req.CallerID = uuid.New()
	req.CallerRole = domain.RoleAdmin

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, ownerID, resp.UserID)
}

func TestUpdateBooking_InvalidatesBothDays(t *testing.T) {
	existing := existingBooking()
	br := &fakeBookingRepo{existing: existing, dayBookings: []*domain.Booking{existing}}
	cache := &fakeCache{}
	uc := newUseCase(br, &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Active: true}}, cache)

	req := ownerRequest()
	req.Date = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-03-09", "2026-03-10"}, cache.keys)
}
