package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goalritmo/gymlog/internal/history"
	"github.com/goalritmo/gymlog/internal/parser"
	"github.com/goalritmo/gymlog/internal/workspace"
)

// HistoryActions are the owner-provided mutation callbacks. The history
// view never mutates the collections itself: every action goes through the
// owner and the view re-renders from a freshly aggregated view model.
type HistoryActions struct {
	DeleteSet     func(id int) error
	RenameSession func(sessionID int, name string) error
	ApplyRating   func(sessionID int, field workspace.RatingField, value int) error
	// Reload re-aggregates the view model after a confirmed mutation.
	Reload func() []history.WorkoutDay
}

// historyMode is the input mode: normal navigation, or one of the inline
// edit modes that capture keystrokes.
type historyMode int

const (
	modeNormal historyMode = iota
	modeDelete
	modeRename
	modeEffort
	modeMood
	modeFilter
)

// actionResultMsg carries the outcome of a mutation callback.
type actionResultMsg struct {
	err error
}

// HistoryModel renders the session-grouped workout history with
// expand/collapse, per-set deletion and inline session edits.
type HistoryModel struct {
	width  int
	height int

	allDays []history.WorkoutDay
	days    []history.WorkoutDay // after date filter
	stale   bool

	actions HistoryActions

	selected int
	expanded map[string]bool

	mode  historyMode
	input textinput.Model

	filterDate *time.Time

	busy    bool
	lastErr error
	notice  string
}

// NewHistoryModel creates the history browser.
func NewHistoryModel(days []history.WorkoutDay, stale bool, actions HistoryActions) HistoryModel {
	input := textinput.New()
	input.Width = 40
	applyInputTheme(&input)

	return HistoryModel{
		allDays:  days,
		days:     days,
		stale:    stale,
		actions:  actions,
		expanded: make(map[string]bool),
		input:    input,
	}
}

// Init initializes the model
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case actionResultMsg:
		m.busy = false
		if msg.err != nil {
			// Leave local state untouched so the view never shows a
			// false success.
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		if m.actions.Reload != nil {
			m.allDays = m.actions.Reload()
			m.applyFilter()
		}
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if m.mode != modeNormal {
			return m.updateEditMode(msg)
		}
		return m.updateNormalMode(msg)
	}

	return m, nil
}

func (m HistoryModel) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.days)-1 {
			m.selected++
		}

	case "enter", " ":
		if day, ok := m.selectedDay(); ok {
			key := day.Day()
			m.expanded[key] = !m.expanded[key]
		}

	case "d":
		if _, ok := m.selectedDay(); ok {
			return m.enterInputMode(modeDelete, "Set id to delete..."), nil
		}
	case "n":
		if day, ok := m.selectedDay(); ok {
			next := m.enterInputMode(modeRename, "New session name...")
			next.input.SetValue(day.Session.SessionName)
			return next, nil
		}
	case "e":
		if _, ok := m.selectedDay(); ok {
			m.mode = modeEffort
			m.notice = ""
		}
	case "m":
		if _, ok := m.selectedDay(); ok {
			m.mode = modeMood
			m.notice = ""
		}
	case "f":
		return m.enterInputMode(modeFilter, "Date: dd/mm/yyyy, today, yesterday..."), nil
	}
	return m, nil
}

func (m HistoryModel) enterInputMode(mode historyMode, placeholder string) HistoryModel {
	m.mode = mode
	m.notice = ""
	m.lastErr = nil
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
	return m
}

func (m HistoryModel) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	}

	switch m.mode {
	case modeEffort, modeMood:
		return m.updateRatingMode(msg)
	}

	if msg.String() == "enter" {
		return m.commitInputMode()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m HistoryModel) updateRatingMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	value, err := strconv.Atoi(msg.String())
	if err != nil || value < 1 || value > 3 {
		// Only 1-3 mean anything in rating mode.
		return m, nil
	}

	day, ok := m.selectedDay()
	if !ok {
		m.mode = modeNormal
		return m, nil
	}

	field := workspace.FieldEffort
	if m.mode == modeMood {
		field = workspace.FieldMood
	}
	m.mode = modeNormal
	m.busy = true
	sessionID := day.Session.ID
	apply := m.actions.ApplyRating
	return m, func() tea.Msg {
		return actionResultMsg{err: apply(sessionID, field, value)}
	}
}

func (m HistoryModel) commitInputMode() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	mode := m.mode
	m.mode = modeNormal
	m.input.Blur()

	switch mode {
	case modeDelete:
		id, err := strconv.Atoi(value)
		if err != nil || id <= 0 {
			m.lastErr = fmt.Errorf("set id must be a positive number")
			return m, nil
		}
		m.busy = true
		del := m.actions.DeleteSet
		return m, func() tea.Msg {
			return actionResultMsg{err: del(id)}
		}

	case modeRename:
		day, ok := m.selectedDay()
		if !ok {
			return m, nil
		}
		if value == "" {
			m.lastErr = fmt.Errorf("session name must not be empty")
			return m, nil
		}
		m.busy = true
		rename := m.actions.RenameSession
		sessionID := day.Session.ID
		return m, func() tea.Msg {
			return actionResultMsg{err: rename(sessionID, value)}
		}

	case modeFilter:
		date, err := parser.ParseHistoryDate(value)
		if err != nil {
			m.lastErr = err
			return m, nil
		}
		m.filterDate = date
		m.applyFilter()
		return m, nil
	}
	return m, nil
}

func (m *HistoryModel) applyFilter() {
	m.days = history.FilterByDate(m.allDays, m.filterDate)
	if m.selected >= len(m.days) {
		m.selected = 0
	}
}

func (m HistoryModel) selectedDay() (history.WorkoutDay, bool) {
	if m.selected < 0 || m.selected >= len(m.days) {
		return history.WorkoutDay{}, false
	}
	return m.days[m.selected], true
}

// View renders the history browser
func (m HistoryModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	title := "WORKOUT HISTORY"
	if m.stale {
		title += "  " + lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).
			Render("(offline copy, may be stale)")
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.filterDate != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).
			Render(fmt.Sprintf("Filtered to %s (f + empty input to clear)", m.filterDate.Format("02 Jan 2006"))))
		b.WriteString("\n\n")
	}

	if len(m.days) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).
			Render("No workouts recorded yet. Use 'gymlog log' to save your first set."))
	} else {
		for i, day := range m.days {
			b.WriteString(m.renderDayCard(day, i == m.selected))
			b.WriteString("\n")
		}
	}

	if m.mode == modeDelete || m.mode == modeRename || m.mode == modeFilter {
		b.WriteString("\n")
		b.WriteString(m.input.View())
	}
	if m.mode == modeEffort {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).
			Render("Effort rating: press 1-3 (same value clears) · esc cancel"))
	}
	if m.mode == modeMood {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).
			Render("Mood rating: press 1-3 (same value clears) · esc cancel"))
	}

	if m.busy {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render("Working..."))
	}
	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).
			Render("✗ " + m.lastErr.Error()))
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("j/k move · enter expand · d delete set · n rename · e effort · m mood · f filter · q quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m HistoryModel) renderDayCard(day history.WorkoutDay, selected bool) string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	marker := "  "
	if selected {
		marker = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render("▸ ")
	}

	header := fmt.Sprintf("%s%s  %s", marker,
		headerStyle.Render(day.Date.Format("Mon 02 Jan 2006")),
		mutedStyle.Render(day.Session.SessionName))

	meta := fmt.Sprintf("    %d exercises · %d sets · effort %s · mood %s",
		len(day.ExerciseGroups), len(day.Sets),
		renderRating(day.Session.Effort), renderRating(day.Session.Mood))

	lines := []string{header, mutedStyle.Render(meta)}

	if m.expanded[day.Day()] {
		for _, group := range day.ExerciseGroups {
			lines = append(lines, "    "+lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorAccentMain)).Bold(true).
				Render(group.ExerciseName))
			for i, set := range group.Sets {
				serie := i + 1
				if set.Serie != nil {
					serie = *set.Serie
				}
				line := fmt.Sprintf("      [%d] set %d: %.4gkg × %d", set.ID, serie, set.Weight, set.Reps)
				if set.Seconds != nil {
					line += fmt.Sprintf(" (%ds)", *set.Seconds)
				}
				if set.Observations != nil && *set.Observations != "" {
					line += "  " + mutedStyle.Render(fmt.Sprintf("%q", *set.Observations))
				}
				lines = append(lines, line)
			}
		}
	}

	return strings.Join(lines, "\n")
}

// renderRating paints a 0-3 rating as filled and empty dots.
func renderRating(value int) string {
	filled := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	var b strings.Builder
	for i := 1; i <= 3; i++ {
		if i <= value {
			b.WriteString(filled.Render("●"))
		} else {
			b.WriteString(empty.Render("○"))
		}
	}
	return b.String()
}

// RunHistoryTUI runs the history browser.
func RunHistoryTUI(days []history.WorkoutDay, stale bool, actions HistoryActions) error {
	model := NewHistoryModel(days, stale, actions)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
