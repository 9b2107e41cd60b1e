// Package tui is a terminal catalog browser driving a ViewController.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/services"
)

// categoriesLoadedMsg is sent once the view's directory fetch has finished.
type categoriesLoadedMsg struct{}

// panelRow is one line of the filter panel: a group header or a category.
type panelRow struct {
	group    string
	category *models.Category
}

// Model is the Bubble Tea model of the browser.
type Model struct {
	view   *services.ViewController
	title  string
	styles Styles

	searchInput textinput.Model
	spinner     spinner.Model
	loaded      bool

	cursor   int
	width    int
	height   int
	quitting bool
}

// NewModel creates a browser over view. The caller mounts the view.
func NewModel(view *services.ViewController, title string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorCandy)

	ti := textinput.New()
	ti.Placeholder = "Søg slik..."
	ti.CharLimit = 60
	ti.Width = 30

	return Model{
		view:        view,
		title:       title,
		styles:      DefaultStyles(),
		searchInput: ti,
		spinner:     sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForCategories(m.view))
}

func waitForCategories(view *services.ViewController) tea.Cmd {
	return func() tea.Msg {
		<-view.Mounted()
		return categoriesLoadedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case categoriesLoadedMsg:
		m.loaded = true
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.view.State().SearchOpen {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.view.CloseSearch()
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	if after := m.searchInput.Value(); after != before {
		m.view.SetTextQuery(after)
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.view.State()

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "/":
		m.view.OpenSearch()
		m.searchInput.SetValue(state.TextQuery)
		cmd := m.searchInput.Focus()
		return m, cmd
	case "f":
		if state.PanelOpen {
			m.view.CloseFilterPanel()
		} else {
			m.view.OpenFilterPanel()
			m.cursor = 0
		}
	case "esc":
		if state.PanelOpen {
			m.view.CloseFilterPanel()
		}
	case "n":
		m.view.NextStep()
	case "p":
		m.view.PrevStep()
	case "j", "down":
		if state.PanelOpen {
			m.cursor++
			m.clampCursor()
		}
	case "k", "up":
		if state.PanelOpen {
			m.cursor--
			m.clampCursor()
		}
	case " ":
		if row, ok := m.currentRow(); ok && row.category != nil {
			m.view.ToggleCategorySelection(row.category.TagName)
		}
	case "enter":
		if row, ok := m.currentRow(); ok {
			if row.category != nil {
				m.view.ToggleCategorySelection(row.category.TagName)
			} else {
				m.view.ToggleGroupExpansion(row.group)
				m.clampCursor()
			}
		}
	}

	// Selection changes clear the query; keep the input in step.
	m.searchInput.SetValue(m.view.State().TextQuery)
	return m, nil
}

// panelRows lists the panel lines: each group followed by its categories when
// expanded, then the categories that have no group.
func (m Model) panelRows() []panelRow {
	categories := m.view.Categories()
	state := m.view.State()

	var rows []panelRow
	for _, g := range m.view.Groups() {
		rows = append(rows, panelRow{group: g})
		if !state.IsExpanded(g) {
			continue
		}
		for _, c := range services.CategoriesInGroup(categories, g) {
			c := c
			rows = append(rows, panelRow{group: g, category: &c})
		}
	}
	for _, c := range services.CategoriesInGroup(categories, "") {
		c := c
		rows = append(rows, panelRow{category: &c})
	}
	return rows
}

func (m Model) currentRow() (panelRow, bool) {
	if !m.view.State().PanelOpen {
		return panelRow{}, false
	}
	rows := m.panelRows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return panelRow{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.panelRows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
