// Package catalog holds the read-only menu: categories, items and outlet
// metadata. The catalog is injected configuration data; nothing here is ever
// mutated after construction.
package catalog

import (
	"strings"

	"github.com/hashtagbbq/tableside/internal/domain"
)

// VegFilter narrows item listings by dietary type.
type VegFilter string

const (
	FilterAll    VegFilter = "all"
	FilterVeg    VegFilter = "veg"
	FilterNonVeg VegFilter = "non-veg"
)

// Filter combines the menu page's browsing controls.
type Filter struct {
	Veg   VegFilter
	Query string
}

type Catalog struct {
	restaurant domain.Restaurant
	categories []domain.MenuCategory
	items      map[string][]domain.MenuItem
}

func New(restaurant domain.Restaurant, categories []domain.MenuCategory, items map[string][]domain.MenuItem) *Catalog {
	return &Catalog{
		restaurant: restaurant,
		categories: categories,
		items:      items,
	}
}

func (c *Catalog) Restaurant() domain.Restaurant {
	return c.restaurant
}

// Outlet looks up an outlet by id. The zero Outlet and false mean no match.
func (c *Catalog) Outlet(id string) (domain.Outlet, bool) {
	for _, outlet := range c.restaurant.Outlets {
		if outlet.ID == id {
			return outlet, true
		}
	}
	return domain.Outlet{}, false
}

// Categories returns the browsing categories in menu order.
func (c *Catalog) Categories() []domain.MenuCategory {
	out := make([]domain.MenuCategory, len(c.categories))
	copy(out, c.categories)
	return out
}

// Items lists a category's items with the filter applied, in menu order.
// An unknown category id lists nothing.
func (c *Catalog) Items(categoryID string, filter Filter) []domain.MenuItem {
	var out []domain.MenuItem

	for _, item := range c.items[categoryID] {
		if !matchesVeg(item, filter.Veg) {
			continue
		}
		if !matchesQuery(item, filter.Query) {
			continue
		}
		out = append(out, item)
	}

	return out
}

// Item finds a single menu item by id across all categories.
func (c *Catalog) Item(id string) (domain.MenuItem, bool) {
	for _, category := range c.categories {
		for _, item := range c.items[category.ID] {
			if item.ID == id {
				return item, true
			}
		}
	}
	return domain.MenuItem{}, false
}

func matchesVeg(item domain.MenuItem, filter VegFilter) bool {
	switch filter {
	case FilterVeg:
		return item.Veg
	case FilterNonVeg:
		return !item.Veg
	default:
		return true
	}
}

// matchesQuery does a case-insensitive substring match over name and
// description, like the menu page's search box.
func matchesQuery(item domain.MenuItem, query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(item.Name), query) ||
		strings.Contains(strings.ToLower(item.Description), query)
}
