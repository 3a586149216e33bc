package peer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JAYASASIREKHA/fooddelivery/models"
)

func TestMergeRestaurants(t *testing.T) {
	local := []models.Restaurant{
		{ID: 1, Name: "Pasta Place", Address: "1 Main St", Cuisine: "Italian"},
		{ID: 2, Name: "Taco Town", Address: "2 Main St"},
	}
	remote := []models.Restaurant{
		// same key as local id 1 — local wins
		{ID: 7, Name: "Pasta Place", Address: "1 Main St", Cuisine: "Fusion"},
		{ID: 8, Name: "Noodle Bar", Address: "9 High St"},
	}

	merged := Merge(local, remote, models.Restaurant.MergeKey)

	assert.Len(t, merged, 3)
	assert.Equal(t, "Italian", merged[0].Cuisine)
	assert.Equal(t, "Taco Town", merged[1].Name)
	assert.Equal(t, "Noodle Bar", merged[2].Name)
}

func TestMergeDeterministicOrder(t *testing.T) {
	local := []models.MenuItem{
		{ID: 1, RestaurantID: 1, Name: "Burger"},
	}
	remote := []models.MenuItem{
		{ID: 5, RestaurantID: 1, Name: "Fries"},
		{ID: 6, RestaurantID: 1, Name: "Burger"}, // duplicate key
		{ID: 7, RestaurantID: 2, Name: "Burger"}, // same name, other restaurant
	}

	first := Merge(local, remote, models.MenuItem.MergeKey)
	second := Merge(local, remote, models.MenuItem.MergeKey)

	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
	assert.Equal(t, 1, first[0].ID)
	assert.Equal(t, 5, first[1].ID)
	assert.Equal(t, 7, first[2].ID)
}

func TestMergeEmptyInputs(t *testing.T) {
	remote := []models.Restaurant{{ID: 1, Name: "Only Remote", Address: "x"}}

	assert.Equal(t, remote, Merge(nil, remote, models.Restaurant.MergeKey))
	assert.Empty(t, Merge[models.Restaurant](nil, nil, models.Restaurant.MergeKey))
}
