// Package catalog holds the static per-branch menu data. Everything in
// here is read-only at runtime; live availability and admin price edits
// live in the inventory overlay, not in the catalog.
package catalog

import (
	"encoding/json"

	"github.com/cartelroasters/storefront/models"
)

const DefaultBranchID = "khalifa"

// Branches returns the branch directory in display order.
func Branches() []models.Branch {
	return branchData
}

// BranchByID resolves a location identifier against the known branches.
func BranchByID(id string) (models.Branch, bool) {
	for _, b := range branchData {
		if b.ID == id {
			return b, true
		}
	}
	return models.Branch{}, false
}

// MenuFor returns the catalog for a branch. Unknown branches fall back
// to the Khalifa City menu, matching how the menus were first rolled
// out.
func MenuFor(branchID string) []models.MenuCategory {
	if menu, ok := branchMenus[branchID]; ok {
		return menu
	}
	return branchMenus[DefaultBranchID]
}

// ItemByID finds one item in a branch's catalog together with the title
// of its category.
func ItemByID(branchID, itemID string) (models.MenuItem, string, bool) {
	for _, cat := range MenuFor(branchID) {
		for _, item := range cat.Items {
			if item.ID == itemID {
				return item, cat.Title, true
			}
		}
	}
	return models.MenuItem{}, "", false
}

// BaseMenuJSON serializes the shared base menu for the assistant's
// system prompt. The overlay is deliberately not included: the
// assistant is not guaranteed to know about live sold-out or price
// edits.
func BaseMenuJSON() string {
	data, err := json.Marshal(baseMenu)
	if err != nil {
		return "[]"
	}
	return string(data)
}
