package events

import (
	"time"

	"github.com/spec-kit/fitness-tracker/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventExerciseLogged EventType = "exercise_logged"
	EventWorkoutLogged  EventType = "workout_logged"
	EventWorkoutUpdated EventType = "workout_updated"
	EventWorkoutDeleted EventType = "workout_deleted"
)

// Event represents a domain event emitted by services. UserID identifies the
// account the event belongs to.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    int64       `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ExerciseLoggedPayload payload.
type ExerciseLoggedPayload struct {
	ExerciseID int64               `json:"exercise_id"`
	Name       domain.ExerciseName `json:"name"`
	Sets       int                 `json:"sets"`
}

// WorkoutLoggedPayload payload.
type WorkoutLoggedPayload struct {
	WorkoutID       int64     `json:"workout_id"`
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
}

// WorkoutDeletedPayload payload.
type WorkoutDeletedPayload struct {
	WorkoutID int64 `json:"workout_id"`
}
