package linenotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const broadcastURL = "https://api.line.me/v2/bot/message/broadcast"

// Client broadcasts booking announcements through the LINE Messaging API.
//
// Notifications are best effort: the booking flow calls Notify after the
// transaction commits and only logs failures. An empty channel token
// disables the client entirely.
type Client struct {
	channelToken string
	url          string
	httpClient   *http.Client
	limiter      *rate.Limiter
	log          Logger
}

// NewClient creates a LINE client. ratePerMin caps outgoing broadcasts so a
// burst of bookings cannot exhaust the channel quota.
func NewClient(channelToken string, ratePerMin int, log Logger) *Client {
	return &Client{
		channelToken: channelToken,
		url:          broadcastURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(float64(ratePerMin)/60.0), 1),
		log:     log,
	}
}

// Enabled reports whether a channel token is configured.
func (c *Client) Enabled() bool {
	return c.channelToken != ""
}

// BroadcastBooking sends the booking bubble to every follower of the channel.
func (c *Client) BroadcastBooking(ctx context.Context, notice BookingNotice) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
	}

	payload := broadcastRequest{
		Messages: []flexMessage{buildBookingBubble(notice)},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.channelToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.log.Info("LINE broadcast sent: plate=%s date=%s", notice.VehiclePlate, notice.Date)
	return nil
}

// buildBookingBubble renders the flex bubble shown in the company channel.
func buildBookingBubble(notice BookingNotice) flexMessage {
	altText := fmt.Sprintf("จองรถ %s วันที่ %s", notice.VehiclePlate, notice.Date)

	return flexMessage{
		Type:    "flex",
		AltText: altText,
		Contents: flexContents{
			Type: "bubble",
			Body: flexBox{
				Type:    "box",
				Layout:  "vertical",
				Spacing: "sm",
				Contents: []flexText{
					{Type: "text", Text: "มีการจองรถใหม่", Weight: "bold", Size: "lg"},
					{Type: "text", Text: "ทะเบียน: " + notice.VehiclePlate, Wrap: true},
					{Type: "text", Text: "ผู้ขับ: " + notice.DriverName, Wrap: true},
					{Type: "text", Text: "วันที่: " + notice.Date},
					{Type: "text", Text: "เวลา: " + notice.TimeSlot, Wrap: true},
					{Type: "text", Text: "ปลายทาง: " + notice.Destination, Wrap: true, Size: "sm", Color: "#666666"},
				},
			},
		},
	}
}
