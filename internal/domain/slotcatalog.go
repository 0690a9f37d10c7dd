package domain

// Thai sentinel labels shared by every catalog variant. The before-hours
// label is always first, the after-hours label always last.
const (
	SlotBeforeHours = "ก่อนเวลางาน"
	SlotAfterHours  = "หลังเวลางาน"
)

// SlotCatalog is the fixed, ordered vocabulary of bookable time ranges
// for one calendar day. Position in the sequence defines adjacency
// (index i and i+1 are adjacent) and the canonical sort order of any
// slot subset. Immutable after construction.
type SlotCatalog struct {
	name   string
	labels []string
	index  map[string]int
}

// NewSlotCatalog builds a catalog from ordered labels. Labels must be
// unique; duplicates keep the first position.
func NewSlotCatalog(name string, labels []string) *SlotCatalog {
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		if _, ok := index[label]; !ok {
			index[label] = i
		}
	}
	return &SlotCatalog{name: name, labels: labels, index: index}
}

// Name returns the catalog variant name ("coarse", "fine").
func (c *SlotCatalog) Name() string {
	return c.name
}

// Labels returns the labels in canonical order. The returned slice is a
// copy; the catalog itself never changes.
func (c *SlotCatalog) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Len returns the number of slots in the catalog.
func (c *SlotCatalog) Len() int {
	return len(c.labels)
}

// IndexOf returns the canonical position of label, and whether the
// label belongs to this catalog.
func (c *SlotCatalog) IndexOf(label string) (int, bool) {
	i, ok := c.index[label]
	return i, ok
}

// Contains reports whether label belongs to this catalog.
func (c *SlotCatalog) Contains(label string) bool {
	_, ok := c.index[label]
	return ok
}

// IsBeforeHours reports whether label is the before-business-hours
// sentinel.
func (c *SlotCatalog) IsBeforeHours(label string) bool {
	return label == SlotBeforeHours
}

// IsAfterHours reports whether label is the after-business-hours
// sentinel.
func (c *SlotCatalog) IsAfterHours(label string) bool {
	return label == SlotAfterHours
}

// CatalogCoarse is the six-slot variant used by the booking screens.
var CatalogCoarse = NewSlotCatalog("coarse", []string{
	SlotBeforeHours,
	"08:00-10:00",
	"10:01-12:00",
	"13:00-15:00",
	"15:01-17:00",
	SlotAfterHours,
})

// CatalogFine is the ten-slot hourly variant used by notification
// rendering.
var CatalogFine = NewSlotCatalog("fine", []string{
	SlotBeforeHours,
	"08:00-09:00",
	"09:01-10:00",
	"10:01-11:00",
	"11:01-12:00",
	"13:00-14:00",
	"14:01-15:00",
	"15:01-16:00",
	"16:01-17:00",
	SlotAfterHours,
})

// CatalogByName resolves a configured catalog variant. Returns the
// coarse catalog and false for unknown names so a misconfigured
// deployment still boots with the historical default.
func CatalogByName(name string) (*SlotCatalog, bool) {
	switch name {
	case "coarse", "":
		return CatalogCoarse, true
	case "fine":
		return CatalogFine, true
	default:
		return CatalogCoarse, false
	}
}
