package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goalritmo/gymlog/internal/models"
)

// catalogRow is one listing entry; exercises and equipment render through
// the same read-only browser.
type catalogRow struct {
	title    string
	subtitle string
	details  []string
}

// CatalogModel is a filterable, searchable, read-only catalog listing.
type CatalogModel struct {
	width  int
	height int

	heading string
	rows    []catalogRow

	filtered []catalogRow
	selected int

	searchActive bool
	search       textinput.Model
}

// NewExerciseCatalogModel builds the browser for the exercise catalog.
func NewExerciseCatalogModel(exercises []models.Exercise) CatalogModel {
	rows := make([]catalogRow, 0, len(exercises))
	for _, ex := range exercises {
		details := []string{
			"Muscle group: " + ex.MuscleGroup,
		}
		if len(ex.PrimaryMuscles) > 0 {
			details = append(details, "Primary: "+strings.Join(ex.PrimaryMuscles, ", "))
		}
		if len(ex.SecondaryMuscles) > 0 {
			details = append(details, "Secondary: "+strings.Join(ex.SecondaryMuscles, ", "))
		}
		if ex.Equipment != "" {
			details = append(details, "Equipment: "+ex.Equipment)
		}
		if ex.VideoURL != nil && *ex.VideoURL != "" {
			details = append(details, "Video: "+*ex.VideoURL)
		}
		rows = append(rows, catalogRow{title: ex.Name, subtitle: ex.MuscleGroup, details: details})
	}
	return newCatalogModel("EXERCISES", rows)
}

// NewEquipmentCatalogModel builds the browser for the equipment catalog.
func NewEquipmentCatalogModel(equipment []models.Equipment) CatalogModel {
	rows := make([]catalogRow, 0, len(equipment))
	for _, item := range equipment {
		details := []string{"Category: " + item.Category}
		if item.Observations != nil && *item.Observations != "" {
			details = append(details, *item.Observations)
		}
		if item.ImageURL != nil && *item.ImageURL != "" {
			details = append(details, "Image: "+*item.ImageURL)
		}
		rows = append(rows, catalogRow{title: item.Name, subtitle: item.Category, details: details})
	}
	return newCatalogModel("EQUIPMENT", rows)
}

func newCatalogModel(heading string, rows []catalogRow) CatalogModel {
	search := textinput.New()
	search.Placeholder = "Search..."
	search.Width = 40
	applyInputTheme(&search)

	return CatalogModel{
		heading:  heading,
		rows:     rows,
		filtered: rows,
		search:   search,
	}
}

// Init initializes the model
func (m CatalogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searchActive {
			return m.handleSearchKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}
		case "/":
			m.searchActive = true
			m.search.Focus()
			return m, textinput.Blink
		}
	}

	return m, nil
}

func (m CatalogModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchActive = false
		m.search.Blur()
		m.search.SetValue("")
		m.applySearch()
		return m, nil
	case "enter":
		m.searchActive = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applySearch()
	return m, cmd
}

func (m *CatalogModel) applySearch() {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query == "" {
		m.filtered = m.rows
	} else {
		var filtered []catalogRow
		for _, row := range m.rows {
			if strings.Contains(strings.ToLower(row.title), query) ||
				strings.Contains(strings.ToLower(row.subtitle), query) {
				filtered = append(filtered, row)
			}
		}
		m.filtered = filtered
	}
	if m.selected >= len(m.filtered) {
		m.selected = 0
	}
}

// View renders the catalog browser
func (m CatalogModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	b.WriteString(titleStyle.Render(m.heading))
	b.WriteString("\n\n")

	if m.searchActive || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).
			Render("Nothing matches."))
	}

	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	for i, row := range m.filtered {
		line := fmt.Sprintf("%s  %s", row.title, mutedStyle.Render(row.subtitle))
		if i == m.selected {
			line = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorAccentBright)).
				Bold(true).
				Render("▸ " + row.title) + "  " + mutedStyle.Render(row.subtitle)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Detail pane for the selected entry
	if m.selected < len(m.filtered) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBorder)).
			Render(strings.Repeat("─", min(m.width-6, 50))))
		b.WriteString("\n")
		for _, d := range m.filtered[m.selected].details {
			b.WriteString(mutedStyle.Render(d))
			b.WriteString("\n")
		}
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k move · / search · esc/q quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// RunCatalogTUI runs a catalog browser.
func RunCatalogTUI(model CatalogModel) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
