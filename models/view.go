package models

import "time"

// ViewEventType names a UI event a catalog view reacts to.
type ViewEventType string

const (
	ViewEventOpenSearch      ViewEventType = "open_search"
	ViewEventCloseSearch     ViewEventType = "close_search"
	ViewEventOpenFilterPanel ViewEventType = "open_filter_panel"
	ViewEventCloseFilter     ViewEventType = "close_filter_panel"
	ViewEventSetTextQuery    ViewEventType = "set_text_query"
	ViewEventToggleCategory  ViewEventType = "toggle_category"
	ViewEventToggleGroup     ViewEventType = "toggle_group"
	ViewEventNextStep        ViewEventType = "next_step"
	ViewEventPrevStep        ViewEventType = "prev_step"
)

// ViewEvent is a UI event. Value carries the query, tag or group when the event needs one.
type ViewEvent struct {
	Type  ViewEventType `json:"type" binding:"required" example:"set_text_query"`
	Value string        `json:"value" example:"choko"`
}

// ViewSnapshot is a consistent copy of a catalog view.
type ViewSnapshot struct {
	ID               string            `json:"id"`
	CollectionHandle string            `json:"collection_handle"`
	State            FilterState       `json:"state"`
	Steps            StepProgress      `json:"steps"`
	ShowPrevious     bool              `json:"show_previous"`
	CategoriesLoaded bool              `json:"categories_loaded"`
	Categories       []Category        `json:"categories"`
	Groups           []string          `json:"groups"`
	CatalogSize      int               `json:"catalog_size"`
	Sections         []CategorySection `json:"sections"`
	LastActivityAt   time.Time         `json:"last_activity_at"`
}

// CreateViewRequest opens a catalog view over one collection page.
type CreateViewRequest struct {
	Handle string `json:"handle" binding:"required" example:"bland-selv-slik"`
	After  string `json:"after,omitempty"`
	Before string `json:"before,omitempty"`
}
