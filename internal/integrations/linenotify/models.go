package linenotify

// BookingNotice carries the fields shown in the broadcast bubble.
// TimeSlot is the merged display form, not the raw selection.
type BookingNotice struct {
	DriverName   string
	VehiclePlate string
	Date         string
	TimeSlot     string
	Destination  string
}

// broadcastRequest is the LINE Messaging API broadcast payload.
type broadcastRequest struct {
	Messages []flexMessage `json:"messages"`
}

type flexMessage struct {
	Type     string       `json:"type"`
	AltText  string       `json:"altText"`
	Contents flexContents `json:"contents"`
}

type flexContents struct {
	Type string  `json:"type"`
	Body flexBox `json:"body"`
}

type flexBox struct {
	Type     string     `json:"type"`
	Layout   string     `json:"layout"`
	Spacing  string     `json:"spacing,omitempty"`
	Contents []flexText `json:"contents"`
}

type flexText struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Weight string `json:"weight,omitempty"`
	Size   string `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
	Wrap   bool   `json:"wrap,omitempty"`
}
