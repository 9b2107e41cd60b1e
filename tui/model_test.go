package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/services"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	collection := services.DemoCollection("bland-selv-slik")
	view := services.NewViewController(collection.Products, services.StaticCategorySource(services.DemoCategories()))
	t.Cleanup(view.Close)

	select {
	case <-view.Mount(context.Background()):
	case <-time.After(2 * time.Second):
		t.Fatal("view did not mount")
	}

	m := NewModel(view, collection.Title)
	m2, _ := m.Update(categoriesLoadedMsg{})
	return m2.(Model)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func sectionNames(m Model) []string {
	var names []string
	for _, s := range m.view.Sections() {
		names = append(names, s.Category.DisplayName)
	}
	return names
}

func TestBrowser_SearchNarrowsSections(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "/")
	require.True(t, m.view.State().SearchOpen)

	m = press(t, m, "k", "u", "g", "l", "e")
	assert.Equal(t, "kugle", m.view.State().TextQuery)
	assert.Equal(t, []string{"Lakrids", "Chokolade"}, sectionNames(m))

	m = press(t, m, "esc")
	assert.False(t, m.view.State().SearchOpen)
	assert.Empty(t, m.view.State().TextQuery)
	assert.Empty(t, m.searchInput.Value())
}

func TestBrowser_PanelSelectsCategories(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "f")
	require.True(t, m.view.State().PanelOpen)

	rows := m.panelRows()
	require.Len(t, rows, 3, "only group headers while collapsed")
	assert.Equal(t, "Smag", rows[0].group)

	// Expand "Smag" and select its first category, Lakrids.
	m = press(t, m, "enter")
	assert.True(t, m.view.State().IsExpanded("Smag"))
	m = press(t, m, "j", " ")
	assert.Equal(t, []string{"licorice"}, m.view.State().SelectedTags)
	for _, s := range m.view.Sections() {
		for _, p := range s.Products {
			assert.True(t, p.HasTag("licorice"), p.Title)
		}
	}

	// Closing the panel resets the selection.
	m = press(t, m, "esc")
	assert.False(t, m.view.State().PanelOpen)
	assert.Empty(t, m.view.State().SelectedTags)
}

func TestBrowser_SelectionClearsSearchInput(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "/", "s", "u", "r", "esc")
	m.view.SetTextQuery("sur")
	m.searchInput.SetValue("sur")

	m = press(t, m, "f", "enter", "j", " ")
	assert.Empty(t, m.view.State().TextQuery)
	assert.Empty(t, m.searchInput.Value())
}

func TestBrowser_Steps(t *testing.T) {
	m := newTestModel(t)
	assert.NotContains(t, m.View(), "forrige")

	m = press(t, m, "n", "n")
	assert.Equal(t, 3, m.view.Steps().Current)
	assert.Contains(t, m.View(), "forrige")

	m = press(t, m, "p", "p", "p")
	assert.Equal(t, 1, m.view.Steps().Current)
}

func TestBrowser_CursorStaysInRange(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "f", "k", "k")
	assert.Zero(t, m.cursor)

	m = press(t, m, "j", "j", "j", "j", "j")
	assert.Equal(t, len(m.panelRows())-1, m.cursor)
}

func TestBrowser_SpinnerUntilLoaded(t *testing.T) {
	view := services.NewViewController(services.DemoCollection("x").Products, nil)
	t.Cleanup(view.Close)
	m := NewModel(view, "x")
	assert.Contains(t, m.View(), "henter kategorier")
}

func TestBrowser_Quit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(Model).View())
}

func TestBrowser_RendersSections(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	for _, name := range []string{"Lakrids", "Chokolade", "Vingummi"} {
		assert.True(t, strings.Contains(out, name), name)
	}
	assert.Contains(t, out, "DKK")
}
