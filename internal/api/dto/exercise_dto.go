package dto

import "time"

// ExerciseRequest payload for logging or updating an exercise.
type ExerciseRequest struct {
	Name            string     `json:"name"`
	Sets            int        `json:"sets"`
	Repetitions     int        `json:"repetitions"`
	WeightLifted    *float64   `json:"weight_lifted"`
	DistanceCovered *float64   `json:"distance_covered"`
	CaloriesBurned  *float64   `json:"calories_burned"`
	Intensity       string     `json:"intensity"`
	PerformedAt     *time.Time `json:"performed_at"`
}

// ExerciseResponse is the public view of an exercise record.
type ExerciseResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Name            string    `json:"name"`
	Sets            int       `json:"sets"`
	Repetitions     int       `json:"repetitions"`
	WeightLifted    *float64  `json:"weight_lifted,omitempty"`
	DistanceCovered *float64  `json:"distance_covered,omitempty"`
	CaloriesBurned  *float64  `json:"calories_burned,omitempty"`
	Intensity       string    `json:"intensity"`
	PerformedAt     time.Time `json:"performed_at"`
}
