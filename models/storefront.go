// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

// CollectionPageSize is how many products one collection page carries.
const CollectionPageSize = 20

// Collection is one page of a storefront collection.
type Collection struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle" example:"bland-selv-slik"`
	Title       string    `json:"title" example:"Bland selv slik"`
	Description string    `json:"description"`
	Products    []Product `json:"products"`
	PageInfo    PageInfo  `json:"page_info"`
	// FromMirror is set when the page was served from the catalog mirror
	// because the Storefront API could not be reached.
	FromMirror bool `json:"from_mirror,omitempty"`
}

// PageInfo is the cursor state of a paginated connection.
type PageInfo struct {
	HasPreviousPage bool   `json:"hasPreviousPage"`
	HasNextPage     bool   `json:"hasNextPage"`
	StartCursor     string `json:"startCursor,omitempty"`
	EndCursor       string `json:"endCursor,omitempty"`
}

// PageRequest selects a page relative to a cursor. Before wins when both are set.
type PageRequest struct {
	After  string `json:"after,omitempty" form:"after"`
	Before string `json:"before,omitempty" form:"before"`
}

// Key identifies the page for the catalog mirror.
func (r PageRequest) Key() string {
	switch {
	case r.Before != "":
		return "before:" + r.Before
	case r.After != "":
		return "after:" + r.After
	default:
		return ""
	}
}

// CollectionResponse is returned by GET /store/collections/:handle.
type CollectionResponse struct {
	Collection Collection        `json:"collection"`
	Sections   []CategorySection `json:"sections"`
	Groups     []string          `json:"groups"`
}

// CartBadge is the cart counter shown in the header.
type CartBadge struct {
	Count int `json:"count" example:"3"`
}
