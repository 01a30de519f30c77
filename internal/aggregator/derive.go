package aggregator

import (
	"sort"
	"strings"

	"github.com/chandra447/item-tracker/internal/models"
)

// SortOption selects the dashboard ordering.
type SortOption string

const (
	// SortCreated orders by item creation time, newest first.
	SortCreated SortOption = "created"
	// SortPrice orders by latest-price timestamp, newest first; items
	// without a price sort last, keeping their relative order.
	SortPrice SortOption = "price"
)

// ParseSortOption maps a query value to a SortOption, defaulting to
// creation order.
func ParseSortOption(s string) SortOption {
	if SortOption(s) == SortPrice {
		return SortPrice
	}
	return SortCreated
}

// SortItems orders items in place according to the selected option.
func SortItems(items []models.ItemWithPrice, by SortOption) {
	switch by {
	case SortPrice:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i].LatestPrice, items[j].LatestPrice
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.Created.After(b.Created.Time)
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Item.Created.After(items[j].Item.Created.Time)
		})
	}
}

// FilterItems returns the items whose name contains the search term,
// case-insensitively. An empty term keeps everything. Filtering is applied
// after sorting, so the result preserves the sorted order.
func FilterItems(items []models.ItemWithPrice, term string) []models.ItemWithPrice {
	term = strings.TrimSpace(term)
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)

	filtered := make([]models.ItemWithPrice, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Item.Name), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
