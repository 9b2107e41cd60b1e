package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.view.Snapshot()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("  ")
	b.WriteString(m.renderSteps(snap))
	b.WriteString("\n")

	if snap.State.SearchOpen {
		b.WriteString(m.styles.Search.Render(m.searchInput.View()))
		b.WriteString("\n")
	} else if snap.State.TextQuery != "" {
		b.WriteString(m.styles.Steps.Render(fmt.Sprintf("søgning: %q", snap.State.TextQuery)))
		b.WriteString("\n")
	}

	body := m.renderSections(snap)
	if snap.State.PanelOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderPanel(snap), "  ", body)
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help(snap.State)))
	return b.String()
}

func (m Model) renderSteps(snap models.ViewSnapshot) string {
	var dots []string
	for i := 1; i <= snap.Steps.Total; i++ {
		if i <= snap.Steps.Current {
			dots = append(dots, m.styles.Selected.Render("●"))
		} else {
			dots = append(dots, "○")
		}
	}
	out := fmt.Sprintf("trin %d/%d %s", snap.Steps.Current, snap.Steps.Total, strings.Join(dots, ""))
	if snap.ShowPrevious {
		out += "  ‹ forrige"
	}
	return m.styles.Steps.Render(out)
}

func (m Model) renderPanel(snap models.ViewSnapshot) string {
	var b strings.Builder
	b.WriteString(m.styles.Group.Render("Filtre"))
	b.WriteString("\n")

	rows := m.panelRows()
	if len(rows) == 0 {
		b.WriteString(m.styles.Empty.Render("ingen kategorier"))
	}
	for i, row := range rows {
		pointer := "  "
		if i == m.cursor {
			pointer = m.styles.Cursor.Render("› ")
		}
		switch {
		case row.category == nil:
			marker := "▸"
			if snap.State.IsExpanded(row.group) {
				marker = "▾"
			}
			b.WriteString(pointer + m.styles.Group.Render(marker+" "+row.group))
		default:
			box := "[ ]"
			line := row.category.DisplayName
			if snap.State.IsSelected(row.category.TagName) {
				box = "[x]"
				line = m.styles.Selected.Render(line)
			}
			indent := ""
			if row.group != "" {
				indent = "  "
			}
			b.WriteString(pointer + indent + box + " " + line)
		}
		b.WriteString("\n")
	}
	return m.styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderSections(snap models.ViewSnapshot) string {
	if !m.loaded && !snap.CategoriesLoaded {
		return m.spinner.View() + " henter kategorier..."
	}
	if len(snap.Sections) == 0 {
		return m.styles.Empty.Render("Ingen produkter matcher")
	}

	var b strings.Builder
	for _, section := range snap.Sections {
		b.WriteString(m.styles.Section.Render(fmt.Sprintf("%s (%d)", section.Category.DisplayName, len(section.Products))))
		b.WriteString("\n")
		for _, p := range section.Products {
			price := ""
			if p.Price.Amount != "" {
				price = m.styles.Price.Render(fmt.Sprintf("  %s %s", p.Price.Amount, p.Price.CurrencyCode))
			}
			b.WriteString(m.styles.Product.Render(p.Title) + price)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) help(state models.FilterState) string {
	switch {
	case state.SearchOpen:
		return "skriv for at søge • esc luk søgning • ctrl+c afslut"
	case state.PanelOpen:
		return "j/k flyt • space vælg • enter fold gruppe • esc/f luk filtre • q afslut"
	default:
		return "/ søg • f filtre • n/p trin • q afslut"
	}
}
