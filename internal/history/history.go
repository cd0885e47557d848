// Package history projects the two flat workout collections into the
// per-day, per-exercise view model the history views render. Everything
// here is pure data shaping: no I/O, no mutation of the inputs.
package history

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/goalritmo/gymlog/internal/models"
)

// ExerciseGroup is a view-only grouping of a day's sets by exercise name.
// Group membership is never persisted.
type ExerciseGroup struct {
	ExerciseName string
	Sets         []models.WorkoutSet
}

// WorkoutDay is one session's nested view model.
type WorkoutDay struct {
	Date           time.Time
	Session        models.WorkoutSession
	Sets           []models.WorkoutSet
	ExerciseGroups []ExerciseGroup
}

// BuildWorkoutDays produces one WorkoutDay per session, most recent first.
// A set belongs to the session whose session_date falls on the same
// calendar day (local time) as the set's created_at. Sets that cannot be
// placed on any day are excluded from the output and logged as a data
// consistency warning; they are a display inconsistency, not an error.
func BuildWorkoutDays(sessions []models.WorkoutSession, sets []models.WorkoutSet) []WorkoutDay {
	days := make([]WorkoutDay, 0, len(sessions))
	placed := make(map[int]bool, len(sets))

	for _, sess := range sessions {
		day := WorkoutDay{
			Date:    sess.SessionDate,
			Session: sess,
		}
		sessDay := sess.Day()
		for _, set := range sets {
			if set.Day() == sessDay {
				day.Sets = append(day.Sets, set)
				placed[set.ID] = true
			}
		}
		day.ExerciseGroups = groupByExercise(day.Sets)
		days = append(days, day)
	}

	for _, set := range sets {
		if !placed[set.ID] {
			logrus.WithFields(logrus.Fields{
				"set_id":     set.ID,
				"session_id": set.SessionID,
				"day":        set.Day(),
			}).Warn("workout set has no matching session, excluded from history")
		}
	}

	// Most recent first; stable keeps input order for same-day sessions.
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Day() > days[j].Day()
	})

	return days
}

// groupByExercise splits a day's sets into per-exercise groups, keeping the
// order in which each exercise name was first encountered and the sets'
// relative order within a group.
func groupByExercise(sets []models.WorkoutSet) []ExerciseGroup {
	var groups []ExerciseGroup
	index := make(map[string]int)

	for _, set := range sets {
		i, ok := index[set.ExerciseName]
		if !ok {
			i = len(groups)
			index[set.ExerciseName] = i
			groups = append(groups, ExerciseGroup{ExerciseName: set.ExerciseName})
		}
		groups[i].Sets = append(groups[i].Sets, set)
	}

	return groups
}

// Day returns the day's calendar key.
func (d WorkoutDay) Day() string {
	return models.DayKey(d.Date)
}

// FilterByDate keeps only the days on the given calendar date. A nil date
// means no filter and returns the input unchanged.
func FilterByDate(days []WorkoutDay, date *time.Time) []WorkoutDay {
	if date == nil {
		return days
	}
	want := models.DayKey(*date)
	filtered := make([]WorkoutDay, 0, len(days))
	for _, d := range days {
		if d.Day() == want {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// ToggleRating applies the toggle-to-clear rule for effort and mood:
// re-applying the current rating clears it back to 0 (unrated). Values
// outside [0,3] are clamped.
func ToggleRating(current, requested int) int {
	requested = clampRating(requested)
	if requested == clampRating(current) {
		return 0
	}
	return requested
}

func clampRating(v int) int {
	if v < 0 {
		return 0
	}
	if v > 3 {
		return 3
	}
	return v
}
