// Package menu computes the customer-facing view of a branch catalog.
package menu

import (
	"strings"

	"github.com/cartelroasters/storefront/models"
)

// Project merges the static catalog with the branch's sold-out overlay
// and applies the search filter. It is a pure function: same inputs,
// same output, and the catalog slices are never mutated. Overlay price
// overrides are intentionally not merged here; they are an admin
// console concern.
func Project(categories []models.MenuCategory, soldOut map[string]bool, search string) []models.MenuCategory {
	merged := make([]models.MenuCategory, 0, len(categories))
	for _, cat := range categories {
		items := make([]models.MenuItem, len(cat.Items))
		copy(items, cat.Items)
		for i := range items {
			if flag, ok := soldOut[items[i].ID]; ok {
				items[i].IsSoldOut = flag
			}
		}
		cat.Items = items
		merged = append(merged, cat)
	}

	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return merged
	}

	filtered := make([]models.MenuCategory, 0, len(merged))
	for _, cat := range merged {
		items := make([]models.MenuItem, 0, len(cat.Items))
		for _, item := range cat.Items {
			if strings.Contains(strings.ToLower(item.Name), query) ||
				strings.Contains(strings.ToLower(item.Ingredients), query) {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		cat.Items = items
		filtered = append(filtered, cat)
	}
	return filtered
}
