package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SlotConjunction joins rendered slot ranges in display strings.
const SlotConjunction = " และ "

// SlotStatus describes one catalog label in an AvailabilityMap.
// An empty HeldBy means the slot is free.
type SlotStatus struct {
	HeldBy string
}

// Free reports whether the slot has no holder.
func (s SlotStatus) Free() bool {
	return s.HeldBy == ""
}

// AvailabilityMap maps every catalog label to its status. Derived data,
// recomputed from the bookings of one vehicle+date; never persisted.
type AvailabilityMap map[string]SlotStatus

// SlotHold is the slice of a booking the resolver needs: which slots it
// occupies, who holds them, and the record identity used to exclude the
// booking being edited from conflict checks.
type SlotHold struct {
	BookingID int64
	HeldBy    string
	Slots     []string
}

// ParseSlotList splits a stored slot string ("a, b,c") into trimmed,
// deduplicated labels. Order of first occurrence is preserved; empty
// segments are dropped.
func ParseSlotList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		label := strings.TrimSpace(p)
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

// JoinSlotList renders labels in the stored comma-joined form.
func JoinSlotList(labels []string) string {
	return strings.Join(labels, ", ")
}

// SortSlots orders labels by their catalog position. Labels unknown to
// the catalog sink to the end in their incoming order.
func SortSlots(catalog *SlotCatalog, labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := catalog.IndexOf(out[i])
		b, bok := catalog.IndexOf(out[j])
		if aok && bok {
			return a < b
		}
		return aok && !bok
	})
	return out
}

// ComputeAvailability derives the per-slot status for one vehicle+date
// from its existing bookings. Every catalog label appears in the result;
// the default is free. When stored bookings illegally overlap, the last
// one wins. The map is a display aid, the storage layer stays the
// authority for rejection.
func ComputeAvailability(catalog *SlotCatalog, holds []SlotHold) AvailabilityMap {
	status := make(AvailabilityMap, catalog.Len())
	for _, label := range catalog.Labels() {
		status[label] = SlotStatus{}
	}
	for _, hold := range holds {
		for _, label := range hold.Slots {
			if catalog.Contains(label) {
				status[label] = SlotStatus{HeldBy: hold.HeldBy}
			}
		}
	}
	return status
}

// HasConflict reports whether any candidate slot is already held by a
// booking other than excludeBookingID (the record being edited; pass 0
// when creating). Pure existence check over set intersection, so the
// order of holds does not matter.
func HasConflict(candidate []string, holds []SlotHold, excludeBookingID int64) bool {
	if len(candidate) == 0 {
		return false
	}
	want := make(map[string]struct{}, len(candidate))
	for _, label := range candidate {
		want[strings.TrimSpace(label)] = struct{}{}
	}
	for _, hold := range holds {
		if hold.BookingID == excludeBookingID {
			continue
		}
		for _, label := range hold.Slots {
			if _, taken := want[strings.TrimSpace(label)]; taken {
				return true
			}
		}
	}
	return false
}

// MergeSlotRanges collapses a stored slot string into human-readable
// contiguous ranges: "08:00-10:00, 10:01-12:00" becomes "08:00-12:00",
// non-adjacent runs are joined with " และ ". Labels unknown to the
// catalog are dropped; if nothing remains the input is returned
// unchanged so stored data is never hidden from the user. Never fails
// on malformed input.
func MergeSlotRanges(catalog *SlotCatalog, raw string) string {
	if raw == "" {
		return ""
	}

	slots := ParseSlotList(raw)
	if len(slots) == 1 {
		return slots[0]
	}

	indexes := make([]int, 0, len(slots))
	for _, label := range slots {
		if i, ok := catalog.IndexOf(label); ok {
			indexes = append(indexes, i)
		}
	}
	if len(indexes) == 0 {
		return raw
	}
	sort.Ints(indexes)

	labels := catalog.Labels()
	var runs [][]int
	current := []int{indexes[0]}
	for _, idx := range indexes[1:] {
		if idx == current[len(current)-1] {
			continue
		}
		if idx == current[len(current)-1]+1 {
			current = append(current, idx)
			continue
		}
		runs = append(runs, current)
		current = []int{idx}
	}
	runs = append(runs, current)

	rendered := make([]string, 0, len(runs))
	for _, run := range runs {
		rendered = append(rendered, renderRun(catalog, labels, run))
	}
	return strings.Join(rendered, SlotConjunction)
}

// renderRun formats one maximal run of adjacent slots as a single
// range. The sentinel labels have no internal "-" separator, so they
// appear whole on their side of the range.
func renderRun(catalog *SlotCatalog, labels []string, run []int) string {
	first := labels[run[0]]
	last := labels[run[len(run)-1]]

	if len(run) == 1 {
		return first
	}
	if catalog.IsBeforeHours(first) {
		return fmt.Sprintf("%s-%s", first, rangeEnd(last))
	}
	if catalog.IsAfterHours(last) {
		return fmt.Sprintf("%s-%s", rangeStart(first), last)
	}
	return fmt.Sprintf("%s-%s", rangeStart(first), rangeEnd(last))
}

// rangeStart returns the text before the label's internal separator.
func rangeStart(label string) string {
	if i := strings.Index(label, "-"); i >= 0 {
		return label[:i]
	}
	return label
}

// rangeEnd returns the text after the label's last separator.
func rangeEnd(label string) string {
	if i := strings.LastIndex(label, "-"); i >= 0 {
		return label[i+1:]
	}
	return label
}

// SlotMinutes returns the duration of a single "HH:MM-HH:MM" label.
// Sentinel and malformed labels count as zero, matching the original
// report behaviour.
func SlotMinutes(label string) int {
	start, end, ok := strings.Cut(label, "-")
	if !ok {
		return 0
	}
	startMin, ok := clockMinutes(strings.TrimSpace(start))
	if !ok {
		return 0
	}
	endMin, ok := clockMinutes(strings.TrimSpace(end))
	if !ok {
		return 0
	}
	return endMin - startMin
}

// SlotSetMinutes sums SlotMinutes over a stored slot string.
func SlotSetMinutes(raw string) int {
	total := 0
	for _, label := range ParseSlotList(raw) {
		total += SlotMinutes(label)
	}
	return total
}

func clockMinutes(s string) (int, bool) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

// FormatThaiDuration renders total minutes as "x วัน y ชม. z นาที",
// omitting zero parts; zero total renders as "0 นาที".
func FormatThaiDuration(totalMinutes int) string {
	days := totalMinutes / (60 * 24)
	hours := (totalMinutes % (60 * 24)) / 60
	minutes := totalMinutes % 60

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d วัน", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d ชม.", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d นาที", minutes))
	}
	if len(parts) == 0 {
		return "0 นาที"
	}
	return strings.Join(parts, " ")
}
