package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

type fakeBookingRepo struct {
	rows []*domain.UsageRow
}

func (f *fakeBookingRepo) ListUsageRows(_ context.Context, _, _ time.Time) ([]*domain.UsageRow, error) {
	return f.rows, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func intPtr(v int) *int { return &v }

func usageRows() []*domain.UsageRow {
	march9 := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	march10 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	return []*domain.UsageRow{
		{
			Plate:      "กข 1234",
			Date:       march9,
			TimeSlot:   "08:00-10:00, 10:01-12:00",
			DriverName: "สมชาย",
			Department: "ฝ่ายขาย",
			TotalMile:  intPtr(85),
		},
		{
			Plate:      "กข 1234",
			Date:       march10,
			TimeSlot:   "13:00-15:00",
			DriverName: "สมหญิง",
			Department: "ฝ่ายขาย",
			TotalMile:  intPtr(40),
		},
		{
			Plate:      "คง 5678",
			Date:       march9,
			TimeSlot:   "13:00-15:00",
			DriverName: "วิชัย",
			Department: "",
			TotalMile:  nil,
		},
	}
}

func newService(rows []*domain.UsageRow) *Service {
	return NewService(&fakeBookingRepo{rows: rows}, domain.CatalogCoarse, "", nopLogger{})
}

func TestUsage_Aggregation(t *testing.T) {
	svc := newService(usageRows())

	report, err := svc.Usage(context.Background(),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "2026-03-01", report.StartDate)
	assert.Equal(t, "2026-03-31", report.EndDate)
	require.Len(t, report.Rows, 3)

	// Rows keep the repository order and render merged slots
	assert.Equal(t, "08:00-12:00", report.Rows[0].TimeSlot)
	assert.Equal(t, "3 ชม. 59 นาที", report.Rows[0].Duration)

	// Per-vehicle totals, sorted by plate
	require.Len(t, report.Vehicles, 2)
	first := report.Vehicles[0]
	assert.Equal(t, "กข 1234", first.Plate)
	assert.Equal(t, 2, first.Trips)
	assert.Equal(t, 239+120, first.TotalMinutes)
	assert.Equal(t, 125, first.TotalMiles)

	second := report.Vehicles[1]
	assert.Equal(t, "คง 5678", second.Plate)
	assert.Equal(t, 1, second.Trips)
	assert.Equal(t, 0, second.TotalMiles)
}

func TestUsage_BlankDepartmentGrouped(t *testing.T) {
	svc := newService(usageRows())

	report, err := svc.Usage(context.Background(),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, report.Departments, 2)
	assert.Equal(t, "-", report.Departments[0].Department)
	assert.Equal(t, 1, report.Departments[0].Trips)
	assert.Equal(t, "ฝ่ายขาย", report.Departments[1].Department)
	assert.Equal(t, 2, report.Departments[1].Trips)
}

func TestUsage_SentinelSlotsCountZeroMinutes(t *testing.T) {
	rows := []*domain.UsageRow{
		{
			Plate:      "กข 1234",
			Date:       time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			TimeSlot:   "ก่อนเวลางาน, 08:00-10:00",
			DriverName: "สมชาย",
		},
	}
	svc := newService(rows)

	report, err := svc.Usage(context.Background(),
		time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, report.Vehicles, 1)
	assert.Equal(t, 120, report.Vehicles[0].TotalMinutes)
}

func TestUsage_InvalidPeriod(t *testing.T) {
	svc := newService(nil)

	t.Run("end before start", func(t *testing.T) {
		_, err := svc.Usage(context.Background(),
			time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("zero dates", func(t *testing.T) {
		_, err := svc.Usage(context.Background(), time.Time{}, time.Time{})
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}

func TestExports(t *testing.T) {
	svc := newService(usageRows())
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("xlsx", func(t *testing.T) {
		data, filename, err := svc.ExportXLSX(context.Background(), start, end)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.Equal(t, "vehicle-usage_2026-03-01_2026-03-31.xlsx", filename)
	})

	t.Run("pdf", func(t *testing.T) {
		data, filename, err := svc.ExportPDF(context.Background(), start, end)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.Equal(t, "vehicle-usage_2026-03-01_2026-03-31.pdf", filename)
	})
}
