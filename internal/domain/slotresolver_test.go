package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeSlotRanges(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"adjacent pair", "08:00-10:00,10:01-12:00", "08:00-12:00"},
		{"before-hours run", "ก่อนเวลางาน,08:00-10:00", "ก่อนเวลางาน-10:00"},
		{"after-hours run", "15:01-17:00,หลังเวลางาน", "15:01-หลังเวลางาน"},
		{"non-adjacent", "08:00-10:00,13:00-15:00", "08:00-10:00 และ 13:00-15:00"},
		{"single label", "10:01-12:00", "10:01-12:00"},
		{"full day", "ก่อนเวลางาน,08:00-10:00,10:01-12:00,13:00-15:00,15:01-17:00,หลังเวลางาน", "ก่อนเวลางาน-หลังเวลางาน"},
		{"three-run middle", "08:00-10:00,10:01-12:00,13:00-15:00", "08:00-15:00"},
		{"spacing tolerated", "08:00-10:00 , 10:01-12:00", "08:00-12:00"},
		{"duplicates tolerated", "08:00-10:00,08:00-10:00,10:01-12:00", "08:00-12:00"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeSlotRanges(CatalogCoarse, tt.raw))
		})
	}
}

func TestMergeSlotRanges_OrderIndependent(t *testing.T) {
	shuffled := "13:00-15:00,08:00-10:00,10:01-12:00"
	sorted := "08:00-10:00,10:01-12:00,13:00-15:00"

	assert.Equal(t, MergeSlotRanges(CatalogCoarse, sorted), MergeSlotRanges(CatalogCoarse, shuffled))
}

func TestMergeSlotRanges_Idempotent(t *testing.T) {
	// A canonical single-label set renders to itself, and rendering the
	// output again does not change it.
	out := MergeSlotRanges(CatalogCoarse, "13:00-15:00")
	assert.Equal(t, out, MergeSlotRanges(CatalogCoarse, out))
}

func TestMergeSlotRanges_UnknownLabels(t *testing.T) {
	t.Run("all unknown passes through verbatim", func(t *testing.T) {
		raw := "06:00-07:00,07:01-08:00"
		assert.Equal(t, raw, MergeSlotRanges(CatalogCoarse, raw))
	})

	t.Run("foreign catalog labels are dropped", func(t *testing.T) {
		// "09:01-10:00" exists only in the fine catalog
		got := MergeSlotRanges(CatalogCoarse, "08:00-10:00,09:01-10:00,10:01-12:00")
		assert.Equal(t, "08:00-12:00", got)
	})

	t.Run("fine catalog renders its own labels", func(t *testing.T) {
		got := MergeSlotRanges(CatalogFine, "08:00-09:00,09:01-10:00")
		assert.Equal(t, "08:00-10:00", got)
	})
}

func TestHasConflict(t *testing.T) {
	existing := []SlotHold{
		{BookingID: 41, HeldBy: "สมชาย", Slots: []string{"08:00-10:00"}},
	}
	candidate := []string{"08:00-10:00", "10:01-12:00"}

	t.Run("overlap with another booking", func(t *testing.T) {
		assert.True(t, HasConflict(candidate, existing, 99))
	})

	t.Run("self-exclusion while editing", func(t *testing.T) {
		assert.False(t, HasConflict(candidate, existing, 41))
	})

	t.Run("disjoint sets", func(t *testing.T) {
		assert.False(t, HasConflict([]string{"13:00-15:00"}, existing, 0))
	})

	t.Run("empty candidate never conflicts", func(t *testing.T) {
		// The caller must reject an empty selection before checking;
		// the resolver itself treats it as no overlap.
		assert.False(t, HasConflict(nil, existing, 0))
	})

	t.Run("order independent over holds", func(t *testing.T) {
		many := []SlotHold{
			{BookingID: 1, Slots: []string{"13:00-15:00"}},
			{BookingID: 2, Slots: []string{"08:00-10:00"}},
		}
		reversed := []SlotHold{many[1], many[0]}
		assert.Equal(t,
			HasConflict(candidate, many, 0),
			HasConflict(candidate, reversed, 0))
	})
}

func TestComputeAvailability(t *testing.T) {
	t.Run("no bookings means all free", func(t *testing.T) {
		avail := ComputeAvailability(CatalogCoarse, nil)
		assert.Len(t, avail, CatalogCoarse.Len())
		for label, status := range avail {
			assert.True(t, status.Free(), "label %q must be free", label)
		}
	})

	t.Run("held slots carry the driver name", func(t *testing.T) {
		avail := ComputeAvailability(CatalogCoarse, []SlotHold{
			{BookingID: 7, HeldBy: "สมหญิง", Slots: []string{"08:00-10:00", "10:01-12:00"}},
		})
		assert.Equal(t, "สมหญิง", avail["08:00-10:00"].HeldBy)
		assert.Equal(t, "สมหญิง", avail["10:01-12:00"].HeldBy)
		assert.True(t, avail["13:00-15:00"].Free())
	})

	t.Run("last writer wins on illegal overlap", func(t *testing.T) {
		avail := ComputeAvailability(CatalogCoarse, []SlotHold{
			{BookingID: 1, HeldBy: "ก้อง", Slots: []string{"08:00-10:00"}},
			{BookingID: 2, HeldBy: "แก้ว", Slots: []string{"08:00-10:00"}},
		})
		assert.Equal(t, "แก้ว", avail["08:00-10:00"].HeldBy)
	})

	t.Run("labels outside the catalog are ignored", func(t *testing.T) {
		avail := ComputeAvailability(CatalogCoarse, []SlotHold{
			{BookingID: 1, HeldBy: "ก้อง", Slots: []string{"09:01-10:00"}},
		})
		for label, status := range avail {
			assert.True(t, status.Free(), "label %q must stay free", label)
		}
	})
}

func TestParseSlotList(t *testing.T) {
	assert.Equal(t,
		[]string{"08:00-10:00", "10:01-12:00"},
		ParseSlotList("08:00-10:00, 10:01-12:00"))

	assert.Equal(t,
		[]string{"08:00-10:00"},
		ParseSlotList(" 08:00-10:00 ,, 08:00-10:00 "))

	assert.Empty(t, ParseSlotList(" , ,"))
}

func TestSortSlots(t *testing.T) {
	got := SortSlots(CatalogCoarse, []string{"หลังเวลางาน", "08:00-10:00", "ไม่รู้จัก", "ก่อนเวลางาน"})
	assert.Equal(t, []string{"ก่อนเวลางาน", "08:00-10:00", "หลังเวลางาน", "ไม่รู้จัก"}, got)
}

func TestSlotMinutes(t *testing.T) {
	assert.Equal(t, 120, SlotMinutes("08:00-10:00"))
	assert.Equal(t, 119, SlotMinutes("10:01-12:00"))
	assert.Equal(t, 0, SlotMinutes(SlotBeforeHours))
	assert.Equal(t, 0, SlotMinutes("garbage"))

	assert.Equal(t, 239, SlotSetMinutes("08:00-10:00, 10:01-12:00, ก่อนเวลางาน"))
}

func TestFormatThaiDuration(t *testing.T) {
	assert.Equal(t, "0 นาที", FormatThaiDuration(0))
	assert.Equal(t, "45 นาที", FormatThaiDuration(45))
	assert.Equal(t, "2 ชม.", FormatThaiDuration(120))
	assert.Equal(t, "1 วัน 2 ชม. 5 นาที", FormatThaiDuration(24*60+125))
}
