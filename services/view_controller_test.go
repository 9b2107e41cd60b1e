package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func waitMounted(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("view did not finish mounting")
	}
}

func mountedView(t *testing.T) *ViewController {
	t.Helper()
	v := NewViewController(scenarioCatalog(), &stubSource{categories: scenarioCategories()}, WithViewID("v1"))
	waitMounted(t, v.Mount(context.Background()))
	return v
}

func TestViewController_NoSectionsBeforeMount(t *testing.T) {
	v := NewViewController(scenarioCatalog(), &stubSource{categories: scenarioCategories()})
	snap := v.Snapshot()
	assert.False(t, snap.CategoriesLoaded)
	assert.Empty(t, snap.Sections)
	assert.Equal(t, 2, snap.CatalogSize)
}

func TestViewController_MountLoadsCategories(t *testing.T) {
	v := mountedView(t)
	snap := v.Snapshot()
	assert.True(t, snap.CategoriesLoaded)
	assert.Equal(t, []string{"salt", "sweet"}, snap.Groups)
	assert.Equal(t, []string{"Lakrids", "Chokolade"}, sectionNames(snap.Sections))
}

func TestViewController_MountIsOnce(t *testing.T) {
	src := &stubSource{categories: scenarioCategories()}
	v := NewViewController(scenarioCatalog(), src)
	first := v.Mount(context.Background())
	second := v.Mount(context.Background())
	waitMounted(t, first)
	waitMounted(t, second)
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestViewController_FetchFailureDegradesToNoSections(t *testing.T) {
	src := &stubSource{err: errors.New("menu down")}
	v := NewViewController(scenarioCatalog(), src)
	waitMounted(t, v.Mount(context.Background()))

	snap := v.Snapshot()
	assert.True(t, snap.CategoriesLoaded)
	assert.Empty(t, snap.Categories)
	assert.Empty(t, snap.Sections)

	v.SetTextQuery("lak")
	assert.Empty(t, v.Sections())
}

func TestViewController_StaleFetchAfterCloseIsDiscarded(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	src := &stubSource{categories: scenarioCategories(), release: make(chan struct{})}
	v := NewViewController(scenarioCatalog(), src)
	done := v.Mount(context.Background())

	v.Close()
	close(src.release)
	waitMounted(t, done)

	assert.True(t, v.Closed())
	snap := v.Snapshot()
	assert.False(t, snap.CategoriesLoaded)
	assert.Empty(t, snap.Categories)
	assert.Empty(t, snap.Sections)
}

func TestViewController_MountAfterCloseDoesNotFetch(t *testing.T) {
	src := &stubSource{categories: scenarioCategories()}
	v := NewViewController(scenarioCatalog(), src)
	v.Close()
	waitMounted(t, v.Mount(context.Background()))
	assert.Equal(t, int32(0), src.calls.Load())
}

func TestViewController_TextQuery(t *testing.T) {
	v := mountedView(t)

	v.SetTextQuery("choko")
	assert.Equal(t, "choko", v.State().TextQuery)
	assert.Equal(t, []string{"Chokolade"}, sectionNames(v.Sections()))

	v.SetTextQuery("")
	assert.Equal(t, []string{"Lakrids", "Chokolade"}, sectionNames(v.Sections()))
}

func TestViewController_SelectionClearsTextQuery(t *testing.T) {
	v := mountedView(t)
	v.OpenFilterPanel()
	v.SetTextQuery("choko")

	v.ToggleCategorySelection("licorice")

	state := v.State()
	assert.Equal(t, "", state.TextQuery)
	assert.Equal(t, []string{"licorice"}, state.SelectedTags)
	assert.Equal(t, []string{"Lakrids"}, sectionNames(v.Sections()))
}

func TestViewController_TextQueryComposesWithSelection(t *testing.T) {
	catalog := append(scenarioCatalog(), product("3", "Lakrids Kugle", "licorice", "chocolate"))
	v := NewViewController(catalog, &stubSource{categories: scenarioCategories()})
	waitMounted(t, v.Mount(context.Background()))

	v.ToggleCategorySelection("licorice")
	v.SetTextQuery("kugle")

	sections := v.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, []string{"3"}, productIDs(sections[0].Products))
	assert.Equal(t, []string{"3"}, productIDs(sections[1].Products))
	assert.Equal(t, []string{"licorice"}, v.State().SelectedTags)
}

func TestViewController_ToggleSelectionTwiceRemovesIt(t *testing.T) {
	v := mountedView(t)
	v.ToggleCategorySelection("licorice")
	v.ToggleCategorySelection("licorice")
	assert.Empty(t, v.State().SelectedTags)
	assert.Equal(t, []string{"Lakrids", "Chokolade"}, sectionNames(v.Sections()))
}

func TestViewController_CloseFilterPanelResets(t *testing.T) {
	v := mountedView(t)
	v.OpenFilterPanel()
	v.ToggleCategorySelection("chocolate")
	v.SetTextQuery("kug")

	v.CloseFilterPanel()

	state := v.State()
	assert.False(t, state.PanelOpen)
	assert.Empty(t, state.SelectedTags)
	assert.Equal(t, "", state.TextQuery)
	assert.Equal(t, []string{"Lakrids", "Chokolade"}, sectionNames(v.Sections()))
}

func TestViewController_CloseSearchKeepsSelection(t *testing.T) {
	v := mountedView(t)
	v.ToggleCategorySelection("chocolate")
	v.OpenSearch()
	v.SetTextQuery("kug")

	v.CloseSearch()

	state := v.State()
	assert.False(t, state.SearchOpen)
	assert.Equal(t, "", state.TextQuery)
	assert.Equal(t, []string{"chocolate"}, state.SelectedTags)
	assert.Equal(t, []string{"Chokolade"}, sectionNames(v.Sections()))
}

func TestViewController_GroupExpansionDoesNotFilter(t *testing.T) {
	v := mountedView(t)
	before := v.Sections()

	v.ToggleGroupExpansion("salt")
	state := v.State()
	assert.True(t, state.IsExpanded("salt"))
	assert.False(t, state.IsExpanded("sweet"))
	assert.Equal(t, before, v.Sections())

	v.ToggleGroupExpansion("salt")
	assert.False(t, v.State().IsExpanded("salt"))
}

func TestViewController_StateValuesAreNotShared(t *testing.T) {
	v := mountedView(t)
	v.ToggleCategorySelection("licorice")
	before := v.State()

	v.ToggleCategorySelection("chocolate")
	v.ToggleGroupExpansion("salt")

	assert.Equal(t, []string{"licorice"}, before.SelectedTags)
	assert.False(t, before.IsExpanded("salt"))
}

func TestViewController_Steps(t *testing.T) {
	v := mountedView(t)
	assert.False(t, v.Snapshot().ShowPrevious)

	for i := 0; i < 10; i++ {
		v.NextStep()
	}
	assert.Equal(t, models.StepCount, v.Steps().Current)
	assert.True(t, v.Snapshot().ShowPrevious)

	for i := 0; i < 10; i++ {
		v.PrevStep()
	}
	assert.Equal(t, 1, v.Steps().Current)
}

func TestViewController_Dispatch(t *testing.T) {
	v := mountedView(t)

	require.NoError(t, v.Dispatch(models.ViewEvent{Type: models.ViewEventOpenSearch}))
	require.NoError(t, v.Dispatch(models.ViewEvent{Type: models.ViewEventSetTextQuery, Value: "choko"}))
	assert.Equal(t, []string{"Chokolade"}, sectionNames(v.Sections()))

	require.NoError(t, v.Dispatch(models.ViewEvent{Type: models.ViewEventToggleCategory, Value: "licorice"}))
	assert.Equal(t, []string{"Lakrids"}, sectionNames(v.Sections()))

	require.NoError(t, v.Dispatch(models.ViewEvent{Type: models.ViewEventCloseFilter}))
	assert.Empty(t, v.State().SelectedTags)

	err := v.Dispatch(models.ViewEvent{Type: "shake"})
	assert.ErrorIs(t, err, ErrUnknownViewEvent)

	err = v.Dispatch(models.ViewEvent{Type: models.ViewEventToggleCategory})
	assert.ErrorIs(t, err, ErrUnknownViewEvent)
}

func TestViewController_LastActivityTracksTransitions(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	v := NewViewController(scenarioCatalog(), nil, WithViewClock(func() time.Time { return now }))
	assert.Equal(t, now, v.LastActivity())

	now = now.Add(time.Minute)
	v.OpenSearch()
	assert.Equal(t, now, v.LastActivity())
}
