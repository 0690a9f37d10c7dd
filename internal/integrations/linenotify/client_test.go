package linenotify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testNotice() BookingNotice {
	return BookingNotice{
		DriverName:   "สมชาย ใจดี",
		VehiclePlate: "กข 1234",
		Date:         "2026-03-09",
		TimeSlot:     "08:00-12:00",
		Destination:  "นิคมอุตสาหกรรมอมตะซิตี้",
	}
}

func TestEnabled(t *testing.T) {
	assert.False(t, NewClient("", 60, nopLogger{}).Enabled())
	assert.True(t, NewClient("token", 60, nopLogger{}).Enabled())
}

func TestBroadcastBooking_Disabled(t *testing.T) {
	client := NewClient("", 60, nopLogger{})

	err := client.BroadcastBooking(context.Background(), testNotice())
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestBroadcastBooking_SendsFlexBubble(t *testing.T) {
	var captured broadcastRequest
	var authHeader string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient("secret-token", 600, nopLogger{})
	client.url = srv.URL

	err := client.BroadcastBooking(context.Background(), testNotice())
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", authHeader)
	require.Len(t, captured.Messages, 1)

	msg := captured.Messages[0]
	assert.Equal(t, "flex", msg.Type)
	assert.Equal(t, "จองรถ กข 1234 วันที่ 2026-03-09", msg.AltText)

	texts := make([]string, 0, len(msg.Contents.Body.Contents))
	for _, c := range msg.Contents.Body.Contents {
		texts = append(texts, c.Text)
	}
	assert.Contains(t, texts, "ทะเบียน: กข 1234")
	assert.Contains(t, texts, "เวลา: 08:00-12:00")
	assert.Contains(t, texts, "ผู้ขับ: สมชาย ใจดี")
}

func TestBroadcastBooking_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient("secret-token", 600, nopLogger{})
	client.url = srv.URL

	err := client.BroadcastBooking(context.Background(), testNotice())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
