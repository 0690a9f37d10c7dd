package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/fleetops/FMS-CarBookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"vehicle_id": 7,
	"driver_name": "สมชาย ใจดี",
	"date": "2026-03-09",
	"slots": ["08:00-10:00", "10:01-12:00"],
	"destination": "นิคมอุตสาหกรรมอมตะซิตี้",
	"reason": "ประชุมลูกค้า"
}`

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:              101,
		UserID:          uuid.New(),
		VehicleID:       7,
		VehiclePlate:    "กข 1234",
		DriverName:      "สมชาย ใจดี",
		Date:            time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		TimeSlot:        "08:00-10:00, 10:01-12:00",
		TimeSlotDisplay: "08:00-12:00",
	}}
	h := NewHandler(uc, nopLogger{})

	rec := post(t, h, validBody)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "2026-03-09", resp.Date)
	assert.Equal(t, "08:00-12:00", resp.TimeSlotDisplay)

	require.NotNil(t, uc.got)
	assert.Equal(t, []string{"08:00-10:00", "10:01-12:00"}, uc.got.Slots)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"empty slots", createBooking.ErrEmptySlots, http.StatusBadRequest},
		{"date in past", createBooking.ErrDateInPast, http.StatusBadRequest},
		{"invalid slots", createBooking.ErrInvalidSlots, http.StatusBadRequest},
		{"vehicle not found", createBooking.ErrVehicleNotFound, http.StatusNotFound},
		{"vehicle inactive", createBooking.ErrVehicleInactive, http.StatusBadRequest},
		{"slot conflict", createBooking.ErrSlotConflict, http.StatusConflict},
		{"slot taken in race", createBooking.ErrSlotTaken, http.StatusConflict},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := post(t, h, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_ConflictMessagesDiffer(t *testing.T) {
	// The advisory pre-check and the storage race map to the same status
	// but tell the user different things.
	read := func(err error) string {
		h := NewHandler(&fakeUseCase{err: err}, nopLogger{})
		rec := post(t, h, validBody)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body["error"]
	}

	conflictMsg := read(createBooking.ErrSlotConflict)
	takenMsg := read(createBooking.ErrSlotTaken)

	assert.Equal(t, msgSlotConflict, conflictMsg)
	assert.Equal(t, msgSlotTaken, takenMsg)
	assert.NotEqual(t, conflictMsg, takenMsg)
}

func TestHandle_BadRequests(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	t.Run("malformed json", func(t *testing.T) {
		rec := post(t, h, `{"vehicle_id": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := post(t, h, `{"vehicle_id": 7, "unexpected": true}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad date format", func(t *testing.T) {
		rec := post(t, h, `{"vehicle_id": 7, "driver_name": "a", "date": "09/03/2026", "slots": ["08:00-10:00"]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
