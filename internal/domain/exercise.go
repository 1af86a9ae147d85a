package domain

import (
	"fmt"
	"strings"
	"time"
)

// ExerciseName enumerates the tracked exercise kinds.
type ExerciseName string

const (
	ExercisePushups ExerciseName = "PUSHUPS"
	ExerciseSquats  ExerciseName = "SQUATS"
	ExercisePlank   ExerciseName = "PLANK"
)

// IntensityLevel grades how demanding a session was.
type IntensityLevel string

const (
	IntensityLow    IntensityLevel = "LOW"
	IntensityMedium IntensityLevel = "MEDIUM"
	IntensityHigh   IntensityLevel = "HIGH"
)

// ParseExerciseName validates a client-supplied exercise name.
func ParseExerciseName(s string) (ExerciseName, error) {
	switch ExerciseName(strings.ToUpper(strings.TrimSpace(s))) {
	case ExercisePushups:
		return ExercisePushups, nil
	case ExerciseSquats:
		return ExerciseSquats, nil
	case ExercisePlank:
		return ExercisePlank, nil
	default:
		return "", fmt.Errorf("unknown exercise name %q", s)
	}
}

// ParseIntensityLevel validates a client-supplied intensity level.
func ParseIntensityLevel(s string) (IntensityLevel, error) {
	switch IntensityLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case IntensityLow:
		return IntensityLow, nil
	case IntensityMedium:
		return IntensityMedium, nil
	case IntensityHigh:
		return IntensityHigh, nil
	default:
		return "", fmt.Errorf("unknown intensity level %q", s)
	}
}

// Exercise records one logged exercise session. Optional measurements are
// pointers so absent values stay NULL in the store.
type Exercise struct {
	ID              int64
	UserID          int64
	Name            ExerciseName
	Sets            int
	Repetitions     int
	WeightLifted    *float64
	DistanceCovered *float64
	CaloriesBurned  *float64
	Intensity       IntensityLevel
	PerformedAt     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
