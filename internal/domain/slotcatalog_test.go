package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotCatalog_IndexOf(t *testing.T) {
	for _, catalog := range []*SlotCatalog{CatalogCoarse, CatalogFine} {
		t.Run(catalog.Name(), func(t *testing.T) {
			seen := make(map[int]string)
			for i, label := range catalog.Labels() {
				idx, ok := catalog.IndexOf(label)
				require.True(t, ok, "label %q must be found", label)
				assert.Equal(t, i, idx)

				// Stable across calls
				again, _ := catalog.IndexOf(label)
				assert.Equal(t, idx, again)

				// Unique position per label
				_, dup := seen[idx]
				assert.False(t, dup, "index %d assigned twice", idx)
				seen[idx] = label
			}

			_, ok := catalog.IndexOf("23:00-23:59")
			assert.False(t, ok)
		})
	}
}

func TestSlotCatalog_Sentinels(t *testing.T) {
	for _, catalog := range []*SlotCatalog{CatalogCoarse, CatalogFine} {
		labels := catalog.Labels()

		assert.True(t, catalog.IsBeforeHours(labels[0]))
		assert.True(t, catalog.IsAfterHours(labels[len(labels)-1]))
		assert.False(t, catalog.IsBeforeHours(labels[1]))
		assert.False(t, catalog.IsAfterHours(labels[1]))
	}
}

func TestSlotCatalog_Variants(t *testing.T) {
	assert.Equal(t, 6, CatalogCoarse.Len())
	assert.Equal(t, 10, CatalogFine.Len())

	t.Run("by name", func(t *testing.T) {
		c, ok := CatalogByName("fine")
		assert.True(t, ok)
		assert.Equal(t, CatalogFine, c)

		c, ok = CatalogByName("")
		assert.True(t, ok)
		assert.Equal(t, CatalogCoarse, c)

		c, ok = CatalogByName("hourly")
		assert.False(t, ok)
		assert.Equal(t, CatalogCoarse, c, "unknown names fall back to the historical default")
	})
}

func TestSlotCatalog_LabelsIsCopy(t *testing.T) {
	labels := CatalogCoarse.Labels()
	labels[0] = "mutated"

	fresh := CatalogCoarse.Labels()
	assert.Equal(t, SlotBeforeHours, fresh[0])
}
