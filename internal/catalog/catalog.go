// Package catalog derives flat views over the nested menu tree: item lists,
// category facets and order totals. Every function is pure and tolerates a
// nil tree, yielding empty results rather than errors.
package catalog

import (
	"github.com/shopspring/decimal"

	"tavolo/internal/domain"
	"tavolo/internal/ledger"
)

// Flatten walks the tree depth-first (menu, then section, then item) and
// returns the items in the order they were received. The order is relied on
// for stable rendering and for category first-seen ordering.
func Flatten(r *domain.Restaurant) []domain.MenuItem {
	if r == nil {
		return nil
	}
	var items []domain.MenuItem
	for _, menu := range r.Menus {
		for _, section := range menu.Sections {
			items = append(items, section.Items...)
		}
	}
	return items
}

// Categories returns the category facets for the tree. With an empty filter
// it lists every distinct category in first-seen order. With a filter set it
// returns just that category when at least one item carries it, otherwise
// nothing.
func Categories(r *domain.Restaurant, filter string) []string {
	items := Flatten(r)
	if filter != "" {
		for _, item := range items {
			if item.Category == filter {
				return []string{filter}
			}
		}
		return nil
	}

	seen := make(map[string]bool)
	var categories []string
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}

// VisibleItems returns the flattened items, restricted to the filter's
// category when one is set. A filter matching nothing yields an empty list.
func VisibleItems(r *domain.Restaurant, filter string) []domain.MenuItem {
	items := Flatten(r)
	if filter == "" {
		return items
	}
	var visible []domain.MenuItem
	for _, item := range items {
		if item.Category == filter {
			visible = append(visible, item)
		}
	}
	return visible
}

// Total sums price times requested quantity across the whole tree, using the
// current price of each item. Items the diner has not selected contribute
// nothing.
func Total(r *domain.Restaurant, l *ledger.Ledger) decimal.Decimal {
	total := decimal.Zero
	for _, item := range Flatten(r) {
		if qty := l.Get(item.ID); qty > 0 {
			total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(qty))))
		}
	}
	return total
}
