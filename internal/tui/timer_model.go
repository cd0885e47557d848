package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// timerState is the rest timer's lifecycle: idle with 0 elapsed, running
// and ticking once per second, then back to idle after the stop capture.
type timerState int

const (
	timerIdle timerState = iota
	timerRunning
)

// TimerModel is the TUI model for the rest timer: a single-control
// stopwatch whose captured duration feeds the entry form's rest field.
type TimerModel struct {
	width  int
	height int

	state   timerState
	elapsed int // seconds

	// run increments on every start so ticks scheduled by an earlier run
	// are discarded instead of advancing a restarted timer.
	run int

	// lastCaptured is the most recent stop capture, shown after reset.
	lastCaptured int
	hasCapture   bool

	// onCapture receives the elapsed seconds exactly once per stop.
	onCapture func(seconds int)

	quitting bool
}

// restTickMsg is sent every second while the timer runs.
type restTickMsg struct {
	run int
}

// NewTimerModel creates a rest timer. The capture callback may be nil.
func NewTimerModel(onCapture func(seconds int)) TimerModel {
	return TimerModel{onCapture: onCapture}
}

// Init initializes the timer model. The timer starts idle; no tick is
// scheduled until the user starts it.
func (m TimerModel) Init() tea.Cmd {
	return nil
}

func (m TimerModel) tick() tea.Cmd {
	run := m.run
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return restTickMsg{run: run}
	})
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case restTickMsg:
		// Stale ticks from a previous run carry no meaning.
		if m.state != timerRunning || msg.run != m.run {
			return m, nil
		}
		m.elapsed++
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "s", "S", "enter":
			return m.toggle()
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// toggle is the single start/capture control: idle starts the tick chain,
// running stops it, reports the elapsed seconds once and resets to 0.
func (m TimerModel) toggle() (tea.Model, tea.Cmd) {
	if m.state == timerIdle {
		m.state = timerRunning
		m.elapsed = 0
		m.run++
		return m, m.tick()
	}

	captured := m.elapsed
	if m.onCapture != nil {
		m.onCapture(captured)
	}
	m.lastCaptured = captured
	m.hasCapture = true
	m.state = timerIdle
	m.elapsed = 0
	return m, nil
}

// Elapsed returns the currently displayed elapsed seconds.
func (m TimerModel) Elapsed() int { return m.elapsed }

// Running reports whether the timer is ticking.
func (m TimerModel) Running() bool { return m.state == timerRunning }

// LastCaptured returns the most recent capture, if any.
func (m TimerModel) LastCaptured() (int, bool) { return m.lastCaptured, m.hasCapture }

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var components []string

	headerText := "REST TIMER"
	if m.state == timerRunning {
		headerText = "⏱  RESTING  ⏱"
	}
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render(headerText))

	components = append(components, m.renderBigClock())

	if m.hasCapture && m.state == timerIdle {
		capturedStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, capturedStyle.Render(
			fmt.Sprintf("Captured %ds rest · use it with 'gymlog log --rest %d'", m.lastCaptured, m.lastCaptured)))
	}

	content := strings.Join(components, "\n\n")
	panel := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, panel, m.renderHelpBar())
}

// renderBigClock renders the elapsed time as an ASCII art MM:SS clock.
func (m TimerModel) renderBigClock() string {
	minutes := m.elapsed / 60
	seconds := m.elapsed % 60

	// ASCII art for digits (5x5 characters each)
	digits := map[rune][]string{
		'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
		'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
		'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
		'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
		'4': {"█   █", "█   █", "█████", "    █", "    █"},
		'5': {"█████", "█    ", "████ ", "    █", "████ "},
		'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
		'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
		'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
		'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
		':': {"     ", "  █  ", "     ", "  █  ", "     "},
	}

	timeStr := fmt.Sprintf("%02d:%02d", minutes, seconds)

	var lines [5]strings.Builder
	for _, char := range timeStr {
		if digitArt, ok := digits[char]; ok {
			for i := 0; i < 5; i++ {
				lines[i].WriteString(digitArt[i])
				lines[i].WriteString(" ")
			}
		}
	}

	clockColor := ColorDisabledText
	if m.state == timerRunning {
		clockColor = ColorAccentBright
	}
	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(clockColor)).
		Bold(true)

	var result []string
	for i := 0; i < 5; i++ {
		line := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(m.width).
			Render(clockStyle.Render(lines[i].String()))
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "space start · space again to capture & reset · esc/q quit"
	if m.state == timerRunning {
		helpText = "space capture & reset · esc/q quit"
	}
	return helpStyle.Render(helpText)
}

// RunTimerTUI runs the rest timer and prints the last captured duration
// when the user leaves.
func RunTimerTUI() error {
	var captured []int
	model := NewTimerModel(func(seconds int) {
		captured = append(captured, seconds)
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if len(captured) > 0 {
		last := captured[len(captured)-1]
		fmt.Printf("⏹️  Captured rest: %ds\n", last)
		fmt.Printf("   Log it with: gymlog log \"<exercise>\" WEIGHTxREPS --rest %d\n", last)
	}
	return nil
}
