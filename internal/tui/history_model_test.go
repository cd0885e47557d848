package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalritmo/gymlog/internal/history"
	"github.com/goalritmo/gymlog/internal/models"
	"github.com/goalritmo/gymlog/internal/workspace"
)

func historyFixture() []history.WorkoutDay {
	sessions := []models.WorkoutSession{
		{ID: 1, SessionDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local), SessionName: "Push day", Effort: 2},
		{ID: 2, SessionDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), SessionName: "Leg day"},
	}
	sets := []models.WorkoutSet{
		{ID: 10, ExerciseName: "Bench Press", Weight: 80, Reps: 8, CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)},
		{ID: 11, ExerciseName: "Squat", Weight: 100, Reps: 5, CreatedAt: time.Date(2026, 3, 15, 9, 0, 0, 0, time.Local)},
	}
	return history.BuildWorkoutDays(sessions, sets)
}

func sendHistoryKeys(t *testing.T, m HistoryModel, keys ...string) HistoryModel {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(key(k))
		m = updated.(HistoryModel)
	}
	return m
}

func TestHistoryNavigationAndExpand(t *testing.T) {
	m := NewHistoryModel(historyFixture(), false, HistoryActions{})

	assert.Equal(t, 0, m.selected)
	m = sendHistoryKeys(t, m, "j")
	assert.Equal(t, 1, m.selected)
	m = sendHistoryKeys(t, m, "j")
	assert.Equal(t, 1, m.selected, "selection stops at the last day")
	m = sendHistoryKeys(t, m, "k")
	assert.Equal(t, 0, m.selected)

	m = sendHistoryKeys(t, m, "enter")
	assert.True(t, m.expanded[m.days[0].Day()])
	m = sendHistoryKeys(t, m, "enter")
	assert.False(t, m.expanded[m.days[0].Day()])
}

func TestHistoryDeleteFlow(t *testing.T) {
	var deleted int
	actions := HistoryActions{
		DeleteSet: func(id int) error {
			deleted = id
			return nil
		},
		Reload: func() []history.WorkoutDay { return historyFixture() },
	}
	m := NewHistoryModel(historyFixture(), false, actions)

	m = sendHistoryKeys(t, m, "d")
	require.Equal(t, modeDelete, m.mode)

	m = sendHistoryKeys(t, m, "1", "1")
	updated, cmd := m.Update(key("enter"))
	m = updated.(HistoryModel)
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	updated, _ = m.Update(cmd())
	m = updated.(HistoryModel)
	assert.Equal(t, 11, deleted)
	assert.False(t, m.busy)
	assert.NoError(t, m.lastErr)
}

func TestHistoryDeleteRejectsBadID(t *testing.T) {
	m := NewHistoryModel(historyFixture(), false, HistoryActions{})

	m = sendHistoryKeys(t, m, "d", "x")
	updated, cmd := m.Update(key("enter"))
	m = updated.(HistoryModel)
	assert.Nil(t, cmd)
	assert.Error(t, m.lastErr)
	assert.False(t, m.busy)
}

func TestHistoryActionFailureKeepsState(t *testing.T) {
	actions := HistoryActions{
		DeleteSet: func(id int) error { return errors.New("server said no") },
		Reload: func() []history.WorkoutDay {
			t.Fatal("reload must not run after a failed action")
			return nil
		},
	}
	m := NewHistoryModel(historyFixture(), false, actions)

	m = sendHistoryKeys(t, m, "d", "1", "0")
	updated, cmd := m.Update(key("enter"))
	m = updated.(HistoryModel)
	require.NotNil(t, cmd)

	updated, _ = m.Update(cmd())
	m = updated.(HistoryModel)
	assert.Error(t, m.lastErr)
	assert.Len(t, m.days, 2, "view model unchanged after failure")
}

func TestHistoryRatingMode(t *testing.T) {
	var gotSession, gotValue int
	var gotField workspace.RatingField
	actions := HistoryActions{
		ApplyRating: func(sessionID int, field workspace.RatingField, value int) error {
			gotSession, gotField, gotValue = sessionID, field, value
			return nil
		},
		Reload: func() []history.WorkoutDay { return historyFixture() },
	}
	m := NewHistoryModel(historyFixture(), false, actions)

	// Days are most recent first: index 0 is Leg day, session 2.
	m = sendHistoryKeys(t, m, "e")
	require.Equal(t, modeEffort, m.mode)

	// Keys outside 1-3 are ignored in rating mode.
	m = sendHistoryKeys(t, m, "7")
	require.Equal(t, modeEffort, m.mode)

	updated, cmd := m.Update(key("2"))
	m = updated.(HistoryModel)
	require.NotNil(t, cmd)
	updated, _ = m.Update(cmd())
	m = updated.(HistoryModel)

	assert.Equal(t, 2, gotSession)
	assert.Equal(t, workspace.FieldEffort, gotField)
	assert.Equal(t, 2, gotValue)
}

func TestHistoryDateFilter(t *testing.T) {
	m := NewHistoryModel(historyFixture(), false, HistoryActions{})

	m = sendHistoryKeys(t, m, "f")
	require.Equal(t, modeFilter, m.mode)
	m.input.SetValue("15/03/2026")
	m = sendHistoryKeys(t, m, "enter")

	require.Len(t, m.days, 1)
	assert.Equal(t, "2026-03-15", m.days[0].Day())

	// An empty filter clears back to everything.
	m = sendHistoryKeys(t, m, "f", "enter")
	assert.Len(t, m.days, 2)
}
