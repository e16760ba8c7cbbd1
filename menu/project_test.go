package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cartelroasters/storefront/models"
)

func sampleCategories() []models.MenuCategory {
	return []models.MenuCategory{
		{
			ID:    "espresso",
			Title: "Espresso Based",
			Items: []models.MenuItem{
				{ID: "esp1", Name: "Espresso", Ingredients: "double shot"},
				{ID: "esp2", Name: "Latte", Ingredients: "espresso, steamed milk", IsSoldOut: true},
			},
		},
		{
			ID:    "bakery",
			Title: "From Our Bakery",
			Items: []models.MenuItem{
				{ID: "bk1", Name: "Butter Croissant", Ingredients: "laminated dough"},
			},
		},
	}
}

func TestProjectOverlayWins(t *testing.T) {
	overlay := map[string]bool{"esp1": true, "esp2": false}
	merged := Project(sampleCategories(), overlay, "")

	assert.True(t, merged[0].Items[0].IsSoldOut)
	assert.False(t, merged[0].Items[1].IsSoldOut)
}

func TestProjectAbsentEntryKeepsCatalogFlag(t *testing.T) {
	merged := Project(sampleCategories(), map[string]bool{}, "")

	assert.False(t, merged[0].Items[0].IsSoldOut)
	assert.True(t, merged[0].Items[1].IsSoldOut)
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	categories := sampleCategories()
	Project(categories, map[string]bool{"esp1": true}, "")

	assert.False(t, categories[0].Items[0].IsSoldOut)
}

func TestProjectSearchMatchesNameOrIngredients(t *testing.T) {
	byName := Project(sampleCategories(), nil, "latte")
	assert.Len(t, byName, 1)
	assert.Equal(t, "esp2", byName[0].Items[0].ID)

	byIngredient := Project(sampleCategories(), nil, "laminated")
	assert.Len(t, byIngredient, 1)
	assert.Equal(t, "bk1", byIngredient[0].Items[0].ID)
}

func TestProjectSearchDropsEmptyCategories(t *testing.T) {
	merged := Project(sampleCategories(), nil, "croissant")
	assert.Len(t, merged, 1)
	assert.Equal(t, "bakery", merged[0].ID)
}

func TestProjectBlankSearchReturnsEverything(t *testing.T) {
	merged := Project(sampleCategories(), nil, "   ")
	assert.Len(t, merged, 2)
	assert.Len(t, merged[0].Items, 2)
}
