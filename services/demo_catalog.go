package services

import (
	"context"
	"strings"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
)

// DemoCatalogSource serves a fixed pick-and-mix collection under any handle.
// It backs the seeder and the offline mode of the terminal browser.
type DemoCatalogSource struct{}

var _ CatalogSource = DemoCatalogSource{}

func (DemoCatalogSource) FetchCollection(_ context.Context, handle string, _ models.PageRequest) (*models.Collection, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, ErrMissingHandle
	}
	return DemoCollection(handle), nil
}

// DemoCollection returns the demo collection under handle.
func DemoCollection(handle string) *models.Collection {
	candy := func(id, title, price string, tags ...string) models.Product {
		return models.Product{
			ID:     "gid://shopify/Product/" + id,
			Handle: handle + "-" + id,
			Title:  title,
			Tags:   tags,
			Price:  models.Money{Amount: price, CurrencyCode: "DKK"},
		}
	}
	return &models.Collection{
		ID:          "gid://shopify/Collection/demo",
		Handle:      handle,
		Title:       "Bland selv slik",
		Description: "Pick and mix candy, by weight",
		Products: []models.Product{
			candy("1001", "Lakrids Twist", "12.50", "licorice"),
			candy("1002", "Salt Lakrids Pastiller", "14.00", "licorice", "salty"),
			candy("1003", "Chokolade Kugle", "8.00", "chocolate"),
			candy("1004", "Lakrids Kugle med Chokolade", "9.50", "licorice", "chocolate"),
			candy("1005", "Sure Orme", "6.00", "sour", "vegan"),
			candy("1006", "Skumbananer", "7.25", "foam"),
			candy("1007", "Vingummi Bamser", "5.75", "gummy", "vegan"),
			candy("1008", "Sur Cola Flaske", "6.50", "sour", "gummy"),
		},
	}
}

// DemoCategories is the directory matching DemoCollection.
func DemoCategories() []models.Category {
	return []models.Category{
		{DisplayName: "Lakrids", TagName: "licorice", Group: "Smag"},
		{DisplayName: "Salt", TagName: "salty", Group: "Smag"},
		{DisplayName: "Sur", TagName: "sour", Group: "Smag"},
		{DisplayName: "Chokolade", TagName: "chocolate", Group: "Type"},
		{DisplayName: "Skum", TagName: "foam", Group: "Type"},
		{DisplayName: "Vingummi", TagName: "gummy", Group: "Type"},
		{DisplayName: "Vegansk", TagName: "vegan", Group: "Kost"},
	}
}

// StaticCategorySource serves a fixed directory.
type StaticCategorySource []models.Category

func (s StaticCategorySource) LoadCategories(context.Context) ([]models.Category, error) {
	return s, nil
}
