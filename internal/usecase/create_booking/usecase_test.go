package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	bookingRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/booking"
	vehicleRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/vehicle"
	"github.com/fleetops/FMS-CarBookingService/internal/integrations/linenotify"
)

type fakeBookingRepo struct {
	dayBookings []*domain.Booking
	createErr   error
	created     *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *booking
	out.ID = 101
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
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

type fakeNotifier struct {
	enabled bool
	notices []linenotify.BookingNotice
}

func (f *fakeNotifier) Enabled() bool { return f.enabled }

func (f *fakeNotifier) BroadcastBooking(_ context.Context, notice linenotify.BookingNotice) error {
	f.notices = append(f.notices, notice)
	return nil
}

type fakeCache struct {
	invalidations int
}

func (f *fakeCache) Invalidate(_ context.Context, _ int64, _ time.Time) {
	f.invalidations++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

func validRequest() *Request {
	return &Request{
		UserID:      uuid.New(),
		UserEmail:   "somchai@example.co.th",
		VehicleID:   7,
		DriverName:  "สมชาย ใจดี",
		Date:        time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		Slots:       []string{"08:00-10:00", "10:01-12:00"},
		Destination: "นิคมอุตสาหกรรมอมตะซิตี้",
		Reason:      "ประชุมลูกค้า",
	}
}

func newUseCase(br *fakeBookingRepo, vr *fakeVehicleRepo, n *fakeNotifier, c *fakeCache) *UseCase {
	uc := NewUseCase(br, vr, fakeTxManager{}, n, c, domain.CatalogCoarse, nopLogger{})
	// Pin the clock a week before validRequest's date
	uc.timeProvider = fakeClock{now: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)}
	return uc
}

func TestCreateBooking_Success(t *testing.T) {
	br := &fakeBookingRepo{}
	vr := &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Plate: "กข 1234", Active: true}}
	notifier := &fakeNotifier{enabled: true}
	cache := &fakeCache{}

	uc := newUseCase(br, vr, notifier, cache)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "กข 1234", resp.VehiclePlate)
	assert.Equal(t, "08:00-10:00, 10:01-12:00", resp.TimeSlot)
	assert.Equal(t, "08:00-12:00", resp.TimeSlotDisplay)

	assert.Equal(t, 1, cache.invalidations)
	require.Len(t, notifier.notices, 1)
	assert.Equal(t, "08:00-12:00", notifier.notices[0].TimeSlot)
	assert.Equal(t, "สมชาย ใจดี", notifier.notices[0].DriverName)
}

func TestCreateBooking_CanonicalizesSlotOrder(t *testing.T) {
	br := &fakeBookingRepo{}
	vr := &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Plate: "กข 1234", Active: true}}

	uc := newUseCase(br, vr, &fakeNotifier{}, &fakeCache{})

	req := validRequest()
	req.Slots = []string{"13:00-15:00", " 08:00-10:00 ", "08:00-10:00"}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Trimmed, deduplicated and stored in catalog order
	assert.Equal(t, "08:00-10:00, 13:00-15:00", resp.TimeSlot)
}

func TestCreateBooking_Conflict(t *testing.T) {
	br := &fakeBookingRepo{
		dayBookings: []*domain.Booking{
			{ID: 55, DriverName: "สมหญิง", VehicleID: 7, TimeSlot: "10:01-12:00"},
		},
	}
	vr := &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Active: true}}

	uc := newUseCase(br, vr, &fakeNotifier{}, &fakeCache{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, br.created)
}

func TestCreateBooking_DisjointSlotsPass(t *testing.T) {
	br := &fakeBookingRepo{
		dayBookings: []*domain.Booking{
			{ID: 55, DriverName: "สมหญิง", VehicleID: 7, TimeSlot: "13:00-15:00"},
		},
	}
	vr := &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Active: true}}

	uc := newUseCase(br, vr, &fakeNotifier{}, &fakeCache{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestCreateBooking_LostRace(t *testing.T) {
	// The advisory pre-check sees a free day, but the unique index rejects
	// the insert because a concurrent writer committed first.
	br := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	vr := &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Active: true}}
	cache := &fakeCache{}

	uc := newUseCase(br, vr, &fakeNotifier{}, cache)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Zero(t, cache.invalidations)
}

func TestCreateBooking_VehicleChecks(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		vr := &fakeVehicleRepo{err: vehicleRepo.ErrVehicleNotFound}
		uc := newUseCase(&fakeBookingRepo{}, vr, &fakeNotifier{}, &fakeCache{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("inactive", func(t *testing.T) {
		vr := &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Active: false}}
		uc := newUseCase(&fakeBookingRepo{}, vr, &fakeNotifier{}, &fakeCache{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrVehicleInactive)
	})
}

func TestCreateBooking_Validation(t *testing.T) {
	vr := &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Active: true}}

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"no slots", func(r *Request) { r.Slots = nil }, ErrEmptySlots},
		{"blank slots", func(r *Request) { r.Slots = []string{"  ", ""} }, ErrEmptySlots},
		{"unknown label", func(r *Request) { r.Slots = []string{"06:00-07:00"} }, ErrInvalidSlots},
		{"fine label on coarse catalog", func(r *Request) { r.Slots = []string{"08:00-09:00"} }, ErrInvalidSlots},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidDate},
		{"date before today", func(r *Request) { r.Date = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }, ErrDateInPast},
		{"blank driver name", func(r *Request) { r.DriverName = "   " }, ErrEmptyDriverName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&fakeBookingRepo{}, vr, &fakeNotifier{}, &fakeCache{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateBooking_SameDayAllowed(t *testing.T) {
	br := &fakeBookingRepo{}
	vr := &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Plate: "กข 1234", Active: true}}

	uc := newUseCase(br, vr, &fakeNotifier{}, &fakeCache{})

	// The clock reads mid-morning on March 2nd; booking that same day passes
	req := validRequest()
	req.Date = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBooking_DisabledNotifierStaysQuiet(t *testing.T) {
	br := &fakeBookingRepo{}
	vr := &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 7, Active: true}}
	notifier := &fakeNotifier{enabled: false}

	uc := newUseCase(br, vr, notifier, &fakeCache{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, notifier.notices)
}
