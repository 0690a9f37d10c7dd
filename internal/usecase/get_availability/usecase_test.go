package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	vehicleRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/vehicle"
)

type fakeBookingRepo struct {
	dayBookings []*domain.Booking
	calls       int
}

func (f *fakeBookingRepo) GetByVehicleAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	f.calls++
	return f.dayBookings, nil
}

type fakeVehicleRepo struct {
	err error
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Vehicle{ID: id, Active: true}, nil
}

type fakeCache struct {
	stored domain.AvailabilityMap
	sets   int
}

func (f *fakeCache) Get(_ context.Context, _ int64, _ time.Time) (domain.AvailabilityMap, bool) {
	if f.stored == nil {
		return nil, false
	}
	return f.stored, true
}

func (f *fakeCache) Set(_ context.Context, _ int64, _ time.Time, avail domain.AvailabilityMap) {
	f.stored = avail
	f.sets++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func dayRequest() *Request {
	return &Request{
		VehicleID: 7,
		Date:      time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetAvailability_CacheMissReadsStorage(t *testing.T) {
	br := &fakeBookingRepo{
		dayBookings: []*domain.Booking{
			{ID: 42, DriverName: "สมชาย", TimeSlot: "08:00-10:00, 10:01-12:00"},
		},
	}
	cache := &fakeCache{}

	uc := NewUseCase(br, &fakeVehicleRepo{}, cache, domain.CatalogCoarse, nopLogger{})

	resp, err := uc.Execute(context.Background(), dayRequest())
	require.NoError(t, err)

	require.Len(t, resp.Slots, domain.CatalogCoarse.Len())
	assert.Equal(t, domain.CatalogCoarse.Labels(), slotLabels(resp))

	byLabel := make(map[string]SlotView, len(resp.Slots))
	for _, s := range resp.Slots {
		byLabel[s.Label] = s
	}
	assert.False(t, byLabel["08:00-10:00"].Free)
	assert.Equal(t, "สมชาย", byLabel["08:00-10:00"].HeldBy)
	assert.True(t, byLabel["13:00-15:00"].Free)

	assert.Equal(t, 1, br.calls)
	assert.Equal(t, 1, cache.sets)
}

func TestGetAvailability_CacheHitSkipsStorage(t *testing.T) {
	br := &fakeBookingRepo{}
	cache := &fakeCache{
		stored: domain.ComputeAvailability(domain.CatalogCoarse, []domain.SlotHold{
			{BookingID: 42, HeldBy: "สมหญิง", Slots: []string{"13:00-15:00"}},
		}),
	}

	uc := NewUseCase(br, &fakeVehicleRepo{}, cache, domain.CatalogCoarse, nopLogger{})

	resp, err := uc.Execute(context.Background(), dayRequest())
	require.NoError(t, err)

	assert.Zero(t, br.calls)

	byLabel := make(map[string]SlotView, len(resp.Slots))
	for _, s := range resp.Slots {
		byLabel[s.Label] = s
	}
	assert.Equal(t, "สมหญิง", byLabel["13:00-15:00"].HeldBy)
}

func TestGetAvailability_EmptyDayAllFree(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeVehicleRepo{}, &fakeCache{}, domain.CatalogCoarse, nopLogger{})

	resp, err := uc.Execute(context.Background(), dayRequest())
	require.NoError(t, err)

	for _, s := range resp.Slots {
		assert.True(t, s.Free, "slot %s should be free", s.Label)
	}
}

func TestGetAvailability_Errors(t *testing.T) {
	t.Run("zero date", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{}, &fakeVehicleRepo{}, &fakeCache{}, domain.CatalogCoarse, nopLogger{})

		req := dayRequest()
		req.Date = time.Time{}

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{}, &fakeVehicleRepo{err: vehicleRepo.ErrVehicleNotFound},
			&fakeCache{}, domain.CatalogCoarse, nopLogger{})

		_, err := uc.Execute(context.Background(), dayRequest())
		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})
}

func slotLabels(resp *Response) []string {
	out := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		out = append(out, s.Label)
	}
	return out
}
