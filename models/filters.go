package models

import "slices"

// FilterState is the UI state of one catalog view. It is a value: every
// transition returns a new FilterState and never touches the receiver's slice
// or map, so a state handed out to a reader stays valid.
type FilterState struct {
	TextQuery      string          `json:"text_query"`
	SelectedTags   []string        `json:"selected_tags"`
	PanelOpen      bool            `json:"panel_open"`
	SearchOpen     bool            `json:"search_open"`
	ExpandedGroups map[string]bool `json:"expanded_groups"`
}

// NewFilterState returns the state of a freshly mounted view.
func NewFilterState() FilterState {
	return FilterState{
		SelectedTags:   []string{},
		ExpandedGroups: map[string]bool{},
	}
}

// IsSelected reports whether tag is part of the category selection.
func (s FilterState) IsSelected(tag string) bool {
	return slices.Contains(s.SelectedTags, tag)
}

// IsExpanded reports whether group is expanded in the filter panel. Unknown groups are collapsed.
func (s FilterState) IsExpanded(group string) bool {
	return s.ExpandedGroups[group]
}

func (s FilterState) OpenSearch() FilterState {
	next := s.clone()
	next.SearchOpen = true
	return next
}

// CloseSearch hides the search box and drops the text query. The category
// selection is left alone.
func (s FilterState) CloseSearch() FilterState {
	next := s.clone()
	next.SearchOpen = false
	next.TextQuery = ""
	return next
}

func (s FilterState) OpenFilterPanel() FilterState {
	next := s.clone()
	next.PanelOpen = true
	return next
}

// CloseFilterPanel is a hard reset of selection filtering: it hides the panel,
// clears the selection and the text query.
func (s FilterState) CloseFilterPanel() FilterState {
	next := s.clone()
	next.PanelOpen = false
	next.SelectedTags = []string{}
	next.TextQuery = ""
	return next
}

func (s FilterState) WithTextQuery(q string) FilterState {
	next := s.clone()
	next.TextQuery = q
	return next
}

// ToggleCategory adds tag to the selection when absent and removes it when
// present. Any selection change clears the text query.
func (s FilterState) ToggleCategory(tag string) FilterState {
	next := s.clone()
	if i := slices.Index(next.SelectedTags, tag); i >= 0 {
		next.SelectedTags = slices.Delete(next.SelectedTags, i, i+1)
	} else {
		next.SelectedTags = append(next.SelectedTags, tag)
	}
	next.TextQuery = ""
	return next
}

// ToggleGroup flips the expansion of one group only.
func (s FilterState) ToggleGroup(group string) FilterState {
	next := s.clone()
	next.ExpandedGroups[group] = !s.ExpandedGroups[group]
	return next
}

func (s FilterState) clone() FilterState {
	next := s
	next.SelectedTags = slices.Clone(s.SelectedTags)
	if next.SelectedTags == nil {
		next.SelectedTags = []string{}
	}
	next.ExpandedGroups = make(map[string]bool, len(s.ExpandedGroups))
	for g, open := range s.ExpandedGroups {
		next.ExpandedGroups[g] = open
	}
	return next
}

// CategorySection is one rendered block of the collection page: a category and
// the products currently visible under it.
type CategorySection struct {
	Category Category  `json:"category"`
	Products []Product `json:"products"`
}

// ═══════════════════════════════════════════════════════════
// Step progress ("select candy" flow)
// ═══════════════════════════════════════════════════════════

const StepCount = 5

// StepProgress tracks the position in the candy selection flow, 1..StepCount.
type StepProgress struct {
	Current int `json:"current" example:"1"`
	Total   int `json:"total" example:"5"`
}

func NewStepProgress() StepProgress {
	return StepProgress{Current: 1, Total: StepCount}
}

func (p StepProgress) Next() StepProgress {
	if p.Current < p.Total {
		p.Current++
	}
	return p
}

func (p StepProgress) Prev() StepProgress {
	if p.Current > 1 {
		p.Current--
	}
	return p
}

// ShowPrevious reports whether the "previous" button is shown.
func (p StepProgress) ShowPrevious() bool {
	return p.Current > 1
}
