package models

import "strings"

// Category is one entry of the candy category directory. A product belongs to a
// category when its tags contain TagName.
type Category struct {
	DisplayName string `json:"display_name" example:"Lakrids"`
	TagName     string `json:"tag_name" example:"licorice"`
	Group       string `json:"group" example:"salt"`
}

// ═══════════════════════════════════════════════════════════
// Menu endpoint payload
// ═══════════════════════════════════════════════════════════

// MenuItems is the raw body of the menu-item endpoint.
type MenuItems struct {
	Data struct {
		TopMenu      []MenuEntry `json:"top_menu"`
		VerticalMenu []MenuEntry `json:"vertical_menu"`
	} `json:"data"`
}

// MenuEntry is loosely typed on purpose: the endpoint omits positions and flags
// freely, so every optional field is a pointer and validated in ToCategory.
type MenuEntry struct {
	ID                   *int    `json:"id"`
	TagName              *string `json:"tag_name"`
	DisplayName          *string `json:"display_name"`
	Group                *string `json:"group"`
	IsInTopList          *int    `json:"is_in_top_list"`
	TopListPosition      *int    `json:"top_list_position"`
	IsInVerticalList     *int    `json:"is_in_vertical_list"`
	VerticalListPosition *int    `json:"vertical_list_position"`
	IsActive             *int    `json:"is_active"`
	IsNew                *int    `json:"is_new"`
}

// ToCategory converts a menu entry into a Category. It returns false for entries
// without a tag or display name, and for entries explicitly marked inactive.
func (e MenuEntry) ToCategory() (Category, bool) {
	if e.IsActive != nil && *e.IsActive == 0 {
		return Category{}, false
	}
	tag := trimmed(e.TagName)
	name := trimmed(e.DisplayName)
	if tag == "" || name == "" {
		return Category{}, false
	}
	return Category{DisplayName: name, TagName: tag, Group: trimmed(e.Group)}, true
}

// Entries returns the menu list the category directory is built from: the
// vertical menu, or the top menu when the vertical one is missing.
func (m MenuItems) Entries() []MenuEntry {
	if len(m.Data.VerticalMenu) > 0 {
		return m.Data.VerticalMenu
	}
	return m.Data.TopMenu
}

// Categories validates the menu into a category directory, preserving payload
// order and keeping the first entry for a repeated tag.
func (m MenuItems) Categories() []Category {
	entries := m.Entries()
	out := make([]Category, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		cat, ok := e.ToCategory()
		if !ok {
			continue
		}
		if _, dup := seen[cat.TagName]; dup {
			continue
		}
		seen[cat.TagName] = struct{}{}
		out = append(out, cat)
	}
	return out
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// CategoryDirectoryResponse is returned by GET /store/categories.
type CategoryDirectoryResponse struct {
	Categories []Category `json:"categories"`
	Groups     []string   `json:"groups"`
}
