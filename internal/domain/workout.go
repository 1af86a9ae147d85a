package domain

import "time"

// Workout records one workout session by date and length.
type Workout struct {
	ID              int64
	UserID          int64
	Date            time.Time
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WorkoutSummary aggregates a user's workout durations. All fields are zero
// when the user has no workouts.
type WorkoutSummary struct {
	TotalWorkouts   int     `json:"total_workouts"`
	TotalDuration   int     `json:"total_duration"`
	AverageDuration float64 `json:"average_duration"`
	MaxDuration     int     `json:"max_duration"`
	MinDuration     int     `json:"min_duration"`
}
