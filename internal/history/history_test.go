package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalritmo/gymlog/internal/models"
)

func localDay(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local)
}

func TestBuildWorkoutDays(t *testing.T) {
	sessions := []models.WorkoutSession{
		{ID: 1, SessionDate: localDay(2026, 3, 14, 0), SessionName: "Push day", Effort: 2},
		{ID: 2, SessionDate: localDay(2026, 3, 15, 0), SessionName: "Leg day"},
	}
	sets := []models.WorkoutSet{
		{ID: 10, ExerciseName: "Bench Press", Weight: 80, Reps: 8, CreatedAt: localDay(2026, 3, 14, 10)},
		{ID: 11, ExerciseName: "Squat", Weight: 100, Reps: 5, CreatedAt: localDay(2026, 3, 15, 9)},
		{ID: 12, ExerciseName: "Bench Press", Weight: 82.5, Reps: 6, CreatedAt: localDay(2026, 3, 14, 11)},
	}

	days := BuildWorkoutDays(sessions, sets)
	require.Len(t, days, 2)

	// Most recent day first.
	assert.Equal(t, "2026-03-15", days[0].Day())
	assert.Equal(t, "Leg day", days[0].Session.SessionName)
	require.Len(t, days[0].Sets, 1)
	assert.Equal(t, 11, days[0].Sets[0].ID)

	assert.Equal(t, "2026-03-14", days[1].Day())
	require.Len(t, days[1].Sets, 2)
	require.Len(t, days[1].ExerciseGroups, 1)
	assert.Equal(t, "Bench Press", days[1].ExerciseGroups[0].ExerciseName)
	assert.Len(t, days[1].ExerciseGroups[0].Sets, 2)
}

func TestBuildWorkoutDays_Empty(t *testing.T) {
	days := BuildWorkoutDays(nil, nil)
	assert.Empty(t, days)
}

func TestBuildWorkoutDays_SessionWithoutSets(t *testing.T) {
	sessions := []models.WorkoutSession{
		{ID: 1, SessionDate: localDay(2026, 3, 14, 0), SessionName: "Rest day check-in"},
	}

	days := BuildWorkoutDays(sessions, nil)
	require.Len(t, days, 1)
	assert.Empty(t, days[0].Sets)
	assert.Empty(t, days[0].ExerciseGroups)
}

func TestBuildWorkoutDays_OrphanSetExcluded(t *testing.T) {
	sessions := []models.WorkoutSession{
		{ID: 1, SessionDate: localDay(2026, 3, 14, 0)},
	}
	sets := []models.WorkoutSet{
		{ID: 10, ExerciseName: "Bench Press", CreatedAt: localDay(2026, 3, 14, 10)},
		// No session exists on this day: must not show up anywhere.
		{ID: 11, ExerciseName: "Deadlift", CreatedAt: localDay(2026, 3, 20, 10)},
	}

	days := BuildWorkoutDays(sessions, sets)
	require.Len(t, days, 1)
	require.Len(t, days[0].Sets, 1)
	assert.Equal(t, 10, days[0].Sets[0].ID)
}

func TestBuildWorkoutDays_GroupOrderIsFirstEncounter(t *testing.T) {
	sessions := []models.WorkoutSession{
		{ID: 1, SessionDate: localDay(2026, 3, 14, 0)},
	}
	sets := []models.WorkoutSet{
		{ID: 1, ExerciseName: "Squat", CreatedAt: localDay(2026, 3, 14, 9)},
		{ID: 2, ExerciseName: "Bench Press", CreatedAt: localDay(2026, 3, 14, 10)},
		{ID: 3, ExerciseName: "Squat", CreatedAt: localDay(2026, 3, 14, 11)},
	}

	days := BuildWorkoutDays(sessions, sets)
	require.Len(t, days, 1)
	require.Len(t, days[0].ExerciseGroups, 2)
	assert.Equal(t, "Squat", days[0].ExerciseGroups[0].ExerciseName)
	assert.Equal(t, "Bench Press", days[0].ExerciseGroups[1].ExerciseName)
	assert.Len(t, days[0].ExerciseGroups[0].Sets, 2)
}

func TestBuildWorkoutDays_Deterministic(t *testing.T) {
	sessions := []models.WorkoutSession{
		{ID: 1, SessionDate: localDay(2026, 3, 14, 0)},
		{ID: 2, SessionDate: localDay(2026, 3, 15, 0)},
	}
	sets := []models.WorkoutSet{
		{ID: 1, ExerciseName: "Squat", CreatedAt: localDay(2026, 3, 14, 9)},
		{ID: 2, ExerciseName: "Bench Press", CreatedAt: localDay(2026, 3, 15, 10)},
	}

	first := BuildWorkoutDays(sessions, sets)
	second := BuildWorkoutDays(sessions, sets)
	assert.Equal(t, first, second)
}

func TestFilterByDate(t *testing.T) {
	days := BuildWorkoutDays([]models.WorkoutSession{
		{ID: 1, SessionDate: localDay(2026, 3, 14, 0)},
		{ID: 2, SessionDate: localDay(2026, 3, 15, 0)},
	}, nil)

	// Nil date: identity.
	assert.Equal(t, days, FilterByDate(days, nil))

	want := localDay(2026, 3, 14, 18) // any time on the day matches
	filtered := FilterByDate(days, &want)
	require.Len(t, filtered, 1)
	assert.Equal(t, "2026-03-14", filtered[0].Day())

	none := localDay(2026, 4, 1, 0)
	assert.Empty(t, FilterByDate(days, &none))
}

func TestToggleRating(t *testing.T) {
	// Re-applying the current value clears it.
	assert.Equal(t, 0, ToggleRating(2, 2))
	assert.Equal(t, 0, ToggleRating(1, 1))
	assert.Equal(t, 0, ToggleRating(3, 3))

	// A different value replaces it.
	assert.Equal(t, 3, ToggleRating(2, 3))
	assert.Equal(t, 2, ToggleRating(0, 2))
	assert.Equal(t, 1, ToggleRating(3, 1))

	// Out-of-range values are clamped before the toggle rule applies.
	assert.Equal(t, 3, ToggleRating(0, 5))
	assert.Equal(t, 0, ToggleRating(0, -1))
	assert.Equal(t, 0, ToggleRating(3, 7))
}
