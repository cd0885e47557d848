package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pressSpace(t *testing.T, m TimerModel) TimerModel {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	return updated.(TimerModel)
}

func tickN(t *testing.T, m TimerModel, n int) TimerModel {
	t.Helper()
	for i := 0; i < n; i++ {
		updated, _ := m.Update(restTickMsg{run: m.run})
		m = updated.(TimerModel)
	}
	return m
}

func TestTimerStartStopCapture(t *testing.T) {
	var captured int
	m := NewTimerModel(func(seconds int) { captured = seconds })

	assert.False(t, m.Running())
	assert.Zero(t, m.Elapsed())

	m = pressSpace(t, m)
	require.True(t, m.Running())

	m = tickN(t, m, 45)
	assert.Equal(t, 45, m.Elapsed())

	m = pressSpace(t, m)
	assert.False(t, m.Running())
	assert.Equal(t, 45, captured)
	// The clock resets for the next set, but the capture is kept.
	assert.Zero(t, m.Elapsed())
	last, ok := m.LastCaptured()
	require.True(t, ok)
	assert.Equal(t, 45, last)
}

func TestTimerIgnoresTicksWhileIdle(t *testing.T) {
	m := NewTimerModel(nil)

	m = tickN(t, m, 10)
	assert.Zero(t, m.Elapsed())
	assert.False(t, m.Running())
}

func TestTimerIgnoresStaleTicks(t *testing.T) {
	m := NewTimerModel(nil)

	m = pressSpace(t, m) // run 1
	m = pressSpace(t, m) // capture, back to idle
	m = pressSpace(t, m) // run 2

	// A leftover tick from run 1 must not advance the clock.
	updated, _ := m.Update(restTickMsg{run: m.run - 1})
	m = updated.(TimerModel)
	assert.Zero(t, m.Elapsed())

	m = tickN(t, m, 3)
	assert.Equal(t, 3, m.Elapsed())
}

func TestTimerRestartCountsFromZero(t *testing.T) {
	m := NewTimerModel(nil)

	m = pressSpace(t, m)
	m = tickN(t, m, 30)
	m = pressSpace(t, m)

	m = pressSpace(t, m)
	require.True(t, m.Running())
	assert.Zero(t, m.Elapsed())

	m = tickN(t, m, 5)
	assert.Equal(t, 5, m.Elapsed())
}

func TestTimerQuitKeys(t *testing.T) {
	m := NewTimerModel(nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
