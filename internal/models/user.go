package models

// User is the current account as reported by /me.
type User struct {
	ID       string         `json:"id"`
	Email    *string        `json:"email"`
	Metadata map[string]any `json:"user_metadata"`
	Role     string         `json:"role"`
}

// UserStats is the aggregate summary served by /me/stats.
type UserStats struct {
	TotalWorkouts int     `json:"total_workouts"`
	TotalSessions int     `json:"total_sessions"`
	WorkoutDays   int     `json:"workout_days"`
	AvgEffort     float64 `json:"avg_effort"`
	AvgMood       float64 `json:"avg_mood"`
}
