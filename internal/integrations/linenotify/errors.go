package linenotify

import "errors"

var (
	// ErrDisabled is returned when the client has no channel token
	ErrDisabled = errors.New("linenotify.client: notifications disabled")

	// ErrInvalidResponse is returned on unexpected responses from the LINE API
	ErrInvalidResponse = errors.New("linenotify.client: invalid response")

	// ErrInternal is returned on request building or transport failures
	ErrInternal = errors.New("linenotify.client: internal error")
)
