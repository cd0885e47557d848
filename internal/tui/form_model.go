package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goalritmo/gymlog/internal/models"
	"github.com/goalritmo/gymlog/internal/workspace"
)

// FormStep represents the current step in the entry wizard
type FormStep int

const (
	StepExercise FormStep = iota
	StepWeight
	StepReps
	StepSerie
	StepSeconds
	StepObservations
	StepConfirm
	StepComplete
)

// input indices into EntryFormModel.inputs
const (
	inputWeight = iota
	inputReps
	inputSerie
	inputSeconds
	inputObservations
	inputCount
)

// SubmitFunc persists a validated submission. It is provided by the owner
// of the workout collections; the form never talks to the API itself.
type SubmitFunc func(workspace.SubmitRequest) error

// submitResultMsg carries the outcome of an in-flight submission.
type submitResultMsg struct {
	err error
}

// EntryFormModel collects one set: exercise, weight, reps, then the
// optional fields. Validation is field-scoped and submission is blocked
// while any required field is invalid.
type EntryFormModel struct {
	width  int
	height int

	step      FormStep
	exercises []models.Exercise
	submit    SubmitFunc

	// Exercise picker state
	filter   textinput.Model
	filtered []models.Exercise
	selected int

	// Chosen exercise
	exerciseID   int
	exerciseName string

	inputs [inputCount]textinput.Model

	fieldErrors map[FormStep]string

	// Submission state. The confirm control is disabled while a request
	// is in flight so rapid repeats cannot double-submit.
	submitting bool
	submitErr  error
	completed  bool
	cancelled  bool
}

// NewEntryFormModel creates the entry form. restSeconds > 0 pre-fills the
// seconds field (typically a captured rest timer duration).
func NewEntryFormModel(exercises []models.Exercise, restSeconds int, submit SubmitFunc) EntryFormModel {
	filter := textinput.New()
	filter.Placeholder = "Type to filter exercises..."
	filter.Width = 40
	filter.Focus()
	applyInputTheme(&filter)

	m := EntryFormModel{
		step:        StepExercise,
		exercises:   exercises,
		filtered:    exercises,
		submit:      submit,
		filter:      filter,
		fieldErrors: make(map[FormStep]string),
	}

	placeholders := [inputCount]string{
		"Weight in kg, e.g. 80 or 72.5 (required)",
		"Repetitions, e.g. 8 (required)",
		"Set number within the exercise (Enter to skip)",
		"Rest or time under tension in seconds (Enter to skip)",
		"Notes about this set (Enter to skip)",
	}
	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].Width = 40
		m.inputs[i].Placeholder = placeholders[i]
		applyInputTheme(&m.inputs[i])
	}
	m.inputs[inputObservations].CharLimit = 500

	if restSeconds > 0 {
		m.inputs[inputSeconds].SetValue(strconv.Itoa(restSeconds))
	}

	return m
}

func applyInputTheme(in *textinput.Model) {
	in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
}

// Init initializes the model
func (m EntryFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m EntryFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case submitResultMsg:
		m.submitting = false
		if msg.err != nil {
			// Keep everything the user typed; surface the error instead
			// of discarding input.
			m.submitErr = msg.err
			return m, nil
		}
		m.completed = true
		m.step = StepComplete
		return m, tea.Quit

	case tea.KeyMsg:
		if m.submitting {
			// Ignore keys while a request is in flight.
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "esc":
			if m.step == StepExercise {
				m.cancelled = true
				return m, tea.Quit
			}
			return m.previousStep(), nil
		}
		if m.step == StepExercise {
			return m.updateExercisePicker(msg)
		}
		if m.step == StepConfirm {
			return m.updateConfirm(msg)
		}
		return m.updateFieldInput(msg)
	}

	return m, nil
}

func (m EntryFormModel) updateExercisePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
		return m, nil
	case "enter":
		if len(m.filtered) == 0 || m.selected >= len(m.filtered) {
			m.fieldErrors[StepExercise] = "Select an exercise from the catalog"
			return m, nil
		}
		chosen := m.filtered[m.selected]
		m.exerciseID = chosen.ID
		m.exerciseName = chosen.Name
		delete(m.fieldErrors, StepExercise)
		return m.advanceTo(StepWeight), nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.filtered = filterExercises(m.exercises, m.filter.Value())
	if m.selected >= len(m.filtered) {
		m.selected = 0
	}
	return m, cmd
}

func filterExercises(exercises []models.Exercise, query string) []models.Exercise {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return exercises
	}
	var filtered []models.Exercise
	for _, ex := range exercises {
		if strings.Contains(strings.ToLower(ex.Name), query) ||
			strings.Contains(strings.ToLower(ex.MuscleGroup), query) {
			filtered = append(filtered, ex)
		}
	}
	return filtered
}

func (m EntryFormModel) updateFieldInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		if err := m.validateStep(m.step); err != "" {
			m.fieldErrors[m.step] = err
			return m, nil
		}
		delete(m.fieldErrors, m.step)
		return m.advanceTo(m.step + 1), nil
	}

	idx := m.inputIndex(m.step)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

func (m EntryFormModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y", "Y":
		if err := m.Validate(); err != nil {
			// Should not happen, each step validated on the way in, but
			// the submit boundary is where blocking is guaranteed.
			m.submitErr = err
			return m, nil
		}
		m.submitting = true
		m.submitErr = nil
		req := m.buildRequest()
		submit := m.submit
		return m, func() tea.Msg {
			return submitResultMsg{err: submit(req)}
		}
	case "n", "N":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m EntryFormModel) advanceTo(step FormStep) EntryFormModel {
	m.step = step
	m.filter.Blur()
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	switch step {
	case StepExercise:
		m.filter.Focus()
	case StepConfirm, StepComplete:
	default:
		m.inputs[m.inputIndex(step)].Focus()
	}
	return m
}

func (m EntryFormModel) previousStep() EntryFormModel {
	if m.step > StepExercise {
		return m.advanceTo(m.step - 1)
	}
	return m
}

func (m EntryFormModel) inputIndex(step FormStep) int {
	switch step {
	case StepWeight:
		return inputWeight
	case StepReps:
		return inputReps
	case StepSerie:
		return inputSerie
	case StepSeconds:
		return inputSeconds
	default:
		return inputObservations
	}
}

// validateStep returns a field-scoped message, or "" when the step is valid.
func (m EntryFormModel) validateStep(step FormStep) string {
	switch step {
	case StepExercise:
		if m.exerciseID == 0 {
			return "Select an exercise from the catalog"
		}
	case StepWeight:
		weight, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[inputWeight].Value()), 64)
		if err != nil || weight <= 0 {
			return "Enter a weight greater than 0"
		}
	case StepReps:
		reps, err := strconv.Atoi(strings.TrimSpace(m.inputs[inputReps].Value()))
		if err != nil || reps <= 0 {
			return "Enter a positive number of repetitions"
		}
	case StepSerie:
		v := strings.TrimSpace(m.inputs[inputSerie].Value())
		if v == "" {
			return ""
		}
		serie, err := strconv.Atoi(v)
		if err != nil || serie <= 0 {
			return "Set number must be a positive integer"
		}
	case StepSeconds:
		v := strings.TrimSpace(m.inputs[inputSeconds].Value())
		if v == "" {
			return ""
		}
		secs, err := strconv.Atoi(v)
		if err != nil || secs < 0 {
			return "Seconds must be zero or more"
		}
	}
	return ""
}

// Validate checks every required field. Submission is blocked while this
// returns an error; no record reaches the persistence layer.
func (m EntryFormModel) Validate() error {
	for _, step := range []FormStep{StepExercise, StepWeight, StepReps, StepSerie, StepSeconds} {
		if msg := m.validateStep(step); msg != "" {
			return fmt.Errorf("%s", msg)
		}
	}
	return nil
}

// buildRequest normalizes the raw inputs into the submission payload.
// Optional fields collapse to nil in this one place, never per-field.
func (m EntryFormModel) buildRequest() workspace.SubmitRequest {
	weight, _ := strconv.ParseFloat(strings.TrimSpace(m.inputs[inputWeight].Value()), 64)
	reps, _ := strconv.Atoi(strings.TrimSpace(m.inputs[inputReps].Value()))

	req := workspace.SubmitRequest{
		ExerciseID: m.exerciseID,
		Weight:     weight,
		Reps:       reps,
	}
	if v := strings.TrimSpace(m.inputs[inputSerie].Value()); v != "" {
		if serie, err := strconv.Atoi(v); err == nil {
			req.Serie = &serie
		}
	}
	if v := strings.TrimSpace(m.inputs[inputSeconds].Value()); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			req.Seconds = &secs
		}
	}
	if v := strings.TrimSpace(m.inputs[inputObservations].Value()); v != "" {
		req.Observations = &v
	}
	return req
}

// View renders the entry form
func (m EntryFormModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	b.WriteString(titleStyle.Render("LOG A SET"))
	b.WriteString("\n\n")

	if m.exerciseName != "" {
		chosenStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		b.WriteString(chosenStyle.Render(fmt.Sprintf("Exercise: %s", m.exerciseName)))
		b.WriteString("\n\n")
	}

	switch m.step {
	case StepExercise:
		b.WriteString(m.renderExercisePicker())
	case StepConfirm:
		b.WriteString(m.renderConfirm())
	default:
		b.WriteString(m.renderFieldStep())
	}

	if err, ok := m.fieldErrors[m.step]; ok {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString("\n")
		b.WriteString(errStyle.Render("✗ " + err))
	}
	if m.submitErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString("\n")
		b.WriteString(errStyle.Render("✗ Could not save: " + m.submitErr.Error()))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).
			Render("Your input is kept, press Enter to retry."))
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter next · esc back · ctrl+c cancel"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m EntryFormModel) renderExercisePicker() string {
	var b strings.Builder
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	b.WriteString(labelStyle.Render("Exercise"))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	shown := m.filtered
	const maxRows = 8
	if len(shown) > maxRows {
		shown = shown[:maxRows]
	}
	for i, ex := range shown {
		line := fmt.Sprintf("%s  %s", ex.Name,
			lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render(ex.MuscleGroup))
		if i == m.selected {
			line = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorAccentBright)).
				Bold(true).
				Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).
			Render("  No exercises match"))
	}
	return b.String()
}

func (m EntryFormModel) renderFieldStep() string {
	labels := map[FormStep]string{
		StepWeight:       "Weight (kg)",
		StepReps:         "Repetitions",
		StepSerie:        "Set number (optional)",
		StepSeconds:      "Seconds (optional)",
		StepObservations: "Observations (optional)",
	}
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	return labelStyle.Render(labels[m.step]) + "\n" + m.inputs[m.inputIndex(m.step)].View()
}

func (m EntryFormModel) renderConfirm() string {
	req := m.buildRequest()
	var b strings.Builder
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	b.WriteString(labelStyle.Render("Save this set?"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", valueStyle.Render(m.exerciseName),
		fmt.Sprintf("%.4gkg × %d", req.Weight, req.Reps)))
	if req.Serie != nil {
		b.WriteString(fmt.Sprintf("  Set %d\n", *req.Serie))
	}
	if req.Seconds != nil {
		b.WriteString(fmt.Sprintf("  %ds\n", *req.Seconds))
	}
	if req.Observations != nil {
		b.WriteString(fmt.Sprintf("  %q\n", *req.Observations))
	}
	b.WriteString("\n")
	if m.submitting {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render("Saving..."))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Render("enter/y save · n cancel"))
	}
	return b.String()
}

// RunEntryFormTUI starts the interactive entry form.
func RunEntryFormTUI(exercises []models.Exercise, restSeconds int, submit SubmitFunc) error {
	model := NewEntryFormModel(exercises, restSeconds, submit)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(EntryFormModel); ok {
		if m.cancelled {
			fmt.Println("❌ Set not saved.")
		} else if m.completed {
			fmt.Printf("✅ Set saved: %s\n", m.exerciseName)
		}
	}
	return nil
}
