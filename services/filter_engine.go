package services

import (
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/utils"
)

// ─────────────────────────────────────────────────────────────
// Filter engine
//
// Everything here is a pure function over its arguments: inputs are read,
// never written, so the same catalog can be filtered from any number of
// goroutines at once.
// ─────────────────────────────────────────────────────────────

// FilterCatalog partitions the catalog into category sections.
//
// A product is listed under a category when it carries the category's tag,
// its title contains textQuery (ignoring case; an empty query matches all) and,
// when selectedTags is non-empty, it carries at least one selected tag.
// Sections follow directory order, products keep catalog order, and
// categories left without products are omitted.
func FilterCatalog(
	products []models.Product,
	categories []models.Category,
	textQuery string,
	selectedTags []string,
) []models.CategorySection {
	sections := make([]models.CategorySection, 0, len(categories))
	if len(products) == 0 || len(categories) == 0 {
		return sections
	}

	// Title folding is the expensive part; do it once per product rather than once per category.
	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if MatchesText(p, textQuery) && MatchesSelection(p, selectedTags) {
			visible = append(visible, p)
		}
	}

	for _, cat := range categories {
		var matched []models.Product
		for _, p := range visible {
			if p.HasTag(cat.TagName) {
				matched = append(matched, p)
			}
		}
		if len(matched) == 0 {
			continue
		}
		sections = append(sections, models.CategorySection{Category: cat, Products: matched})
	}
	return sections
}

// MatchesText reports whether the product title contains query, ignoring case.
func MatchesText(p models.Product, query string) bool {
	return utils.ContainsFold(p.Title, query)
}

// MatchesSelection reports whether the product passes the category selection.
// An empty selection lets every product through.
func MatchesSelection(p models.Product, selectedTags []string) bool {
	return len(selectedTags) == 0 || p.HasAnyTag(selectedTags)
}

// FilterBySelection returns the products passing the category selection, in catalog order.
func FilterBySelection(products []models.Product, selectedTags []string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if MatchesSelection(p, selectedTags) {
			out = append(out, p)
		}
	}
	return out
}

// DeriveGroups returns the distinct non-empty groups of the directory in order of first appearance.
func DeriveGroups(categories []models.Category) []string {
	groups := make([]string, 0)
	seen := make(map[string]struct{})
	for _, cat := range categories {
		if cat.Group == "" {
			continue
		}
		if _, ok := seen[cat.Group]; ok {
			continue
		}
		seen[cat.Group] = struct{}{}
		groups = append(groups, cat.Group)
	}
	return groups
}

// CategoriesInGroup returns the categories of one group in directory order.
func CategoriesInGroup(categories []models.Category, group string) []models.Category {
	var out []models.Category
	for _, cat := range categories {
		if cat.Group == group {
			out = append(out, cat)
		}
	}
	return out
}
