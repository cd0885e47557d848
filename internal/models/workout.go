package models

import (
	"time"
)

// WorkoutSet represents one recorded set of an exercise
type WorkoutSet struct {
	ID           int       `gorm:"primarykey" json:"id"`
	ExerciseID   int       `json:"exercise_id"`
	ExerciseName string    `gorm:"not null" json:"exercise_name"`
	Weight       float64   `gorm:"not null" json:"weight"` // kilograms
	Reps         int       `gorm:"not null" json:"reps"`
	Serie        *int      `json:"serie"`   // set index within the exercise, optional
	Seconds      *int      `json:"seconds"` // rest or time under tension, optional
	Observations *string   `json:"observations"`
	SessionID    int       `gorm:"not null" json:"session_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// WorkoutSession represents one training day
type WorkoutSession struct {
	ID          int       `gorm:"primarykey" json:"id"`
	SessionDate time.Time `gorm:"not null" json:"session_date"`
	SessionName string    `json:"session_name"`
	Effort      int       `gorm:"default:0" json:"effort"` // 0=unrated, 1-3 rating
	Mood        int       `gorm:"default:0" json:"mood"`   // 0=unrated, 1-3 rating
	CreatedAt   time.Time `json:"created_at"`
}

// DayKey returns the calendar-day identity of a timestamp as YYYY-MM-DD
// in local time. All day comparisons go through this single normalization
// so a record's day is derived exactly one way everywhere.
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// Day returns the set's calendar day key derived from its creation time.
func (w WorkoutSet) Day() string {
	return DayKey(w.CreatedAt)
}

// Day returns the session's calendar day key derived from its session date.
func (s WorkoutSession) Day() string {
	return DayKey(s.SessionDate)
}
