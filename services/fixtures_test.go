package services

import (
	"context"
	"sync/atomic"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
)

func product(id, title string, tags ...string) models.Product {
	return models.Product{
		ID:    id,
		Title: title,
		Tags:  tags,
		Price: models.Money{Amount: "10.00", CurrencyCode: "DKK"},
	}
}

// scenarioCatalog is the two-product shop used throughout the tests.
func scenarioCatalog() []models.Product {
	return []models.Product{
		product("1", "Lakrids Twist", "licorice"),
		product("2", "Chokolade Kugle", "chocolate"),
	}
}

func scenarioCategories() []models.Category {
	return []models.Category{
		{TagName: "licorice", DisplayName: "Lakrids", Group: "salt"},
		{TagName: "chocolate", DisplayName: "Chokolade", Group: "sweet"},
	}
}

// stubSource is a CategorySource. With release set, LoadCategories blocks
// until release is closed or the context ends.
type stubSource struct {
	categories []models.Category
	err        error
	release    chan struct{}
	calls      atomic.Int32
}

func (s *stubSource) LoadCategories(ctx context.Context) ([]models.Category, error) {
	s.calls.Add(1)
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.categories, nil
}

func sectionNames(sections []models.CategorySection) []string {
	names := make([]string, 0, len(sections))
	for _, s := range sections {
		names = append(names, s.Category.DisplayName)
	}
	return names
}

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
