package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"go.uber.org/zap"
)

// ErrUnknownViewEvent is returned by Dispatch for an event type it does not handle.
var ErrUnknownViewEvent = errors.New("unknown view event")

// ViewController owns the filter state of one catalog view. Every transition
// replaces the FilterState wholesale and recomputes the visible sections.
//
// The category directory is fetched once, asynchronously, by Mount. The
// result belongs to this controller only and is dropped if the view has been
// closed by the time it arrives.
type ViewController struct {
	mu sync.RWMutex

	id       string
	handle   string
	products []models.Product
	source   CategorySource
	logger   *zap.Logger
	now      func() time.Time

	categories       []models.Category
	groups           []string
	categoriesLoaded bool

	state    models.FilterState
	steps    models.StepProgress
	selected []models.Product
	sections []models.CategorySection

	mountOnce    sync.Once
	mounted      chan struct{}
	cancelMount  context.CancelFunc
	closed       bool
	lastActivity time.Time
}

// ViewOption customises a ViewController.
type ViewOption func(*ViewController)

func WithViewID(id string) ViewOption {
	return func(v *ViewController) { v.id = id }
}

func WithCollectionHandle(handle string) ViewOption {
	return func(v *ViewController) { v.handle = handle }
}

func WithViewLogger(logger *zap.Logger) ViewOption {
	return func(v *ViewController) {
		if logger != nil {
			v.logger = logger
		}
	}
}

func WithViewClock(now func() time.Time) ViewOption {
	return func(v *ViewController) { v.now = now }
}

// NewViewController creates an unmounted view over products. Until Mount has
// delivered the category directory the view has no sections.
func NewViewController(products []models.Product, source CategorySource, opts ...ViewOption) *ViewController {
	v := &ViewController{
		products:   slices.Clone(products),
		source:     source,
		logger:     zap.NewNop(),
		now:        time.Now,
		categories: []models.Category{},
		groups:     []string{},
		state:      models.NewFilterState(),
		steps:      models.NewStepProgress(),
		sections:   []models.CategorySection{},
		mounted:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.selected = v.products
	v.lastActivity = v.now()
	return v
}

func (v *ViewController) ID() string { return v.id }

// Mount starts the category directory fetch and returns a channel closed once
// the result has been applied or discarded. Calling Mount again returns the
// same channel without fetching again.
func (v *ViewController) Mount(ctx context.Context) <-chan struct{} {
	v.mountOnce.Do(func() {
		v.mu.Lock()
		if v.closed {
			v.mu.Unlock()
			close(v.mounted)
			return
		}
		fetchCtx, cancel := context.WithCancel(ctx)
		v.cancelMount = cancel
		v.mu.Unlock()

		go func() {
			defer close(v.mounted)
			defer cancel()
			categories := LoadCategoriesOrEmpty(fetchCtx, v.source, v.logger)
			v.applyCategories(categories)
		}()
	})
	return v.mounted
}

// Mounted returns the channel Mount closes; it never closes if Mount is not called.
func (v *ViewController) Mounted() <-chan struct{} {
	return v.mounted
}

func (v *ViewController) applyCategories(categories []models.Category) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		v.logger.Debug("view closed before categories arrived, discarding", zap.String("view", v.id))
		return
	}
	v.categories = slices.Clone(categories)
	v.groups = DeriveGroups(v.categories)
	v.categoriesLoaded = true
	v.recompute()
	v.logger.Debug("categories applied",
		zap.String("view", v.id),
		zap.Int("categories", len(v.categories)),
		zap.Int("sections", len(v.sections)))
}

// Close tears the view down. A category fetch still in flight is cancelled and
// its result will not be applied.
func (v *ViewController) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	if v.cancelMount != nil {
		v.cancelMount()
	}
}

func (v *ViewController) Closed() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.closed
}

// ─────────────────────────────────────────────────────────────
// Transitions
// ─────────────────────────────────────────────────────────────

func (v *ViewController) OpenSearch() {
	v.transition(func() { v.state = v.state.OpenSearch() })
}

// CloseSearch hides the search box and clears the text query.
func (v *ViewController) CloseSearch() {
	v.transition(func() { v.state = v.state.CloseSearch() })
}

func (v *ViewController) OpenFilterPanel() {
	v.transition(func() { v.state = v.state.OpenFilterPanel() })
}

// CloseFilterPanel hides the panel and resets both the selection and the text query.
func (v *ViewController) CloseFilterPanel() {
	v.transition(func() {
		v.state = v.state.CloseFilterPanel()
		v.selected = v.products
	})
}

// SetTextQuery replaces the text query. The search runs over the selection
// subset, so it narrows an existing category selection instead of replacing it.
func (v *ViewController) SetTextQuery(q string) {
	v.transition(func() { v.state = v.state.WithTextQuery(q) })
}

// ToggleCategorySelection adds or removes tag from the selection, rebuilds the
// selection subset from the full catalog and clears the text query.
func (v *ViewController) ToggleCategorySelection(tag string) {
	v.transition(func() {
		v.state = v.state.ToggleCategory(tag)
		v.selected = FilterBySelection(v.products, v.state.SelectedTags)
	})
}

// ToggleGroupExpansion only changes panel visibility; it does not affect filtering.
func (v *ViewController) ToggleGroupExpansion(group string) {
	v.transition(func() { v.state = v.state.ToggleGroup(group) })
}

func (v *ViewController) NextStep() {
	v.transition(func() { v.steps = v.steps.Next() })
}

func (v *ViewController) PrevStep() {
	v.transition(func() { v.steps = v.steps.Prev() })
}

// Dispatch applies a named UI event.
func (v *ViewController) Dispatch(ev models.ViewEvent) error {
	switch ev.Type {
	case models.ViewEventOpenSearch:
		v.OpenSearch()
	case models.ViewEventCloseSearch:
		v.CloseSearch()
	case models.ViewEventOpenFilterPanel:
		v.OpenFilterPanel()
	case models.ViewEventCloseFilter:
		v.CloseFilterPanel()
	case models.ViewEventSetTextQuery:
		v.SetTextQuery(ev.Value)
	case models.ViewEventToggleCategory:
		if ev.Value == "" {
			return fmt.Errorf("%w: %s needs a tag", ErrUnknownViewEvent, ev.Type)
		}
		v.ToggleCategorySelection(ev.Value)
	case models.ViewEventToggleGroup:
		if ev.Value == "" {
			return fmt.Errorf("%w: %s needs a group", ErrUnknownViewEvent, ev.Type)
		}
		v.ToggleGroupExpansion(ev.Value)
	case models.ViewEventNextStep:
		v.NextStep()
	case models.ViewEventPrevStep:
		v.PrevStep()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownViewEvent, ev.Type)
	}
	return nil
}

func (v *ViewController) transition(apply func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	apply()
	v.lastActivity = v.now()
	v.recompute()
}

// recompute must be called with mu held.
func (v *ViewController) recompute() {
	v.sections = FilterCatalog(v.selected, v.categories, v.state.TextQuery, v.state.SelectedTags)
}

// ─────────────────────────────────────────────────────────────
// Readers
// ─────────────────────────────────────────────────────────────

// State returns the current filter state. FilterState is replaced, never
// mutated, so the returned value stays consistent.
func (v *ViewController) State() models.FilterState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Sections returns the visible sections. The slice is shared and must be treated as read-only.
func (v *ViewController) Sections() []models.CategorySection {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.sections
}

func (v *ViewController) Categories() []models.Category {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.categories
}

func (v *ViewController) Groups() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.groups
}

func (v *ViewController) Steps() models.StepProgress {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.steps
}

func (v *ViewController) LastActivity() time.Time {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.lastActivity
}

// Snapshot returns a consistent copy of the whole view.
func (v *ViewController) Snapshot() models.ViewSnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return models.ViewSnapshot{
		ID:               v.id,
		CollectionHandle: v.handle,
		State:            v.state,
		Steps:            v.steps,
		ShowPrevious:     v.steps.ShowPrevious(),
		CategoriesLoaded: v.categoriesLoaded,
		Categories:       v.categories,
		Groups:           v.groups,
		CatalogSize:      len(v.products),
		Sections:         v.sections,
		LastActivityAt:   v.lastActivity,
	}
}
