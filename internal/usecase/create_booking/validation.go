package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

// validateRequest checks the user-supplied fields against the catalog and
// the free-text limits. Slot labels are matched after trimming, the same
// tolerance the resolver applies. Booking today is allowed, earlier dates
// are not.
func validateRequest(req *Request, catalog *domain.SlotCatalog, today time.Time) error {
	if req.Date.IsZero() {
		return ErrInvalidDate
	}
	if req.Date.Before(today) {
		return ErrDateInPast
	}

	if strings.TrimSpace(req.DriverName) == "" {
		return ErrEmptyDriverName
	}
	if utf8.RuneCountInString(req.DriverName) > domain.MaxDriverNameLength {
		return fmt.Errorf("%w: driver name", ErrFieldTooLong)
	}
	if utf8.RuneCountInString(req.Destination) > domain.MaxDestinationLength {
		return fmt.Errorf("%w: destination", ErrFieldTooLong)
	}
	if utf8.RuneCountInString(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason", ErrFieldTooLong)
	}

	slots := normalizeSlots(req.Slots)
	if len(slots) == 0 {
		return ErrEmptySlots
	}
	for _, label := range slots {
		if !catalog.Contains(label) {
			return fmt.Errorf("%w: %q", ErrInvalidSlots, label)
		}
	}

	return nil
}

// normalizeSlots trims and deduplicates the selection, preserving order.
func normalizeSlots(slots []string) []string {
	seen := make(map[string]struct{}, len(slots))
	out := make([]string, 0, len(slots))

	for _, label := range slots {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}

	return out
}
