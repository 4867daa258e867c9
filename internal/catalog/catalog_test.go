package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashtagbbq/tableside/internal/catalog"
)

func TestDefaultCatalogShape(t *testing.T) {
	c := catalog.Default()

	categories := c.Categories()
	require.Len(t, categories, 8)
	assert.Equal(t, "veg-starters", categories[0].ID)
	assert.Equal(t, "desserts", categories[len(categories)-1].ID)

	restaurant := c.Restaurant()
	assert.Equal(t, "Hashtag BBQ", restaurant.Name)
	require.Len(t, restaurant.Outlets, 1)

	outlet, ok := c.Outlet("1")
	require.True(t, ok)
	assert.Equal(t, restaurant.Outlets[0], outlet)

	_, ok = c.Outlet("99")
	assert.False(t, ok)
}

func TestItemLookup(t *testing.T) {
	c := catalog.Default()

	item, ok := c.Item("vs1")
	require.True(t, ok)
	assert.Equal(t, "Paneer Tikka", item.Name)
	assert.Equal(t, int64(24000), item.Price.Amount)
	assert.True(t, item.Veg)

	_, ok = c.Item("nope")
	assert.False(t, ok)
}

func TestItemsFiltering(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		name       string
		categoryID string
		filter     catalog.Filter
		wantIDs    []string
	}{
		{
			name:       "unfiltered category in menu order",
			categoryID: "bbq-platters",
			filter:     catalog.Filter{},
			wantIDs:    []string{"bbq1", "bbq2", "bbq3"},
		},
		{
			name:       "veg filter",
			categoryID: "tandoori-specials",
			filter:     catalog.Filter{Veg: catalog.FilterVeg},
			wantIDs:    []string{"ts2"},
		},
		{
			name:       "non-veg filter",
			categoryID: "tandoori-specials",
			filter:     catalog.Filter{Veg: catalog.FilterNonVeg},
			wantIDs:    []string{"ts1", "ts3"},
		},
		{
			name:       "search by name is case-insensitive",
			categoryID: "veg-starters",
			filter:     catalog.Filter{Query: "TIKKA"},
			wantIDs:    []string{"vs1", "vs2"},
		},
		{
			name:       "search matches descriptions too",
			categoryID: "rice-biryani",
			filter:     catalog.Filter{Query: "cumin"},
			wantIDs:    []string{"rb4"},
		},
		{
			name:       "search combined with veg filter",
			categoryID: "non-veg-starters",
			filter:     catalog.Filter{Veg: catalog.FilterNonVeg, Query: "seekh"},
			wantIDs:    []string{"nvs2", "nvs4"},
		},
		{
			name:       "unknown category lists nothing",
			categoryID: "sushi",
			filter:     catalog.Filter{},
			wantIDs:    nil,
		},
		{
			name:       "no match",
			categoryID: "desserts",
			filter:     catalog.Filter{Query: "paneer"},
			wantIDs:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := c.Items(tt.categoryID, tt.filter)

			ids := make([]string, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}

			if tt.wantIDs == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
