package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/fitness-tracker/internal/auth"
	"github.com/spec-kit/fitness-tracker/internal/domain"
	"github.com/spec-kit/fitness-tracker/internal/events"
	"github.com/spec-kit/fitness-tracker/internal/repository"
	apperrors "github.com/spec-kit/fitness-tracker/pkg/util"
)

// WorkoutService owns workout CRUD with uniform ownership checks. Mutations
// publish events so the cached summary stays fresh.
type WorkoutService struct {
	workouts   repository.WorkoutRepository
	dispatcher events.Dispatcher
}

// NewWorkoutService builds the service.
func NewWorkoutService(workouts repository.WorkoutRepository, dispatcher events.Dispatcher) *WorkoutService {
	return &WorkoutService{workouts: workouts, dispatcher: dispatcher}
}

// WorkoutInput carries client-supplied workout fields.
type WorkoutInput struct {
	Date            time.Time
	DurationMinutes int
}

func (in WorkoutInput) validate() error {
	if in.Date.IsZero() {
		return apperrors.NewValidationError("date required", nil)
	}
	if in.DurationMinutes <= 0 {
		return apperrors.NewValidationError("duration must be positive", nil)
	}
	return nil
}

// Log records a new workout for the caller.
func (s *WorkoutService) Log(ctx context.Context, principal *auth.Principal, input WorkoutInput) (*domain.Workout, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		UserID:          principal.UserID(),
		Date:            input.Date,
		DurationMinutes: input.DurationMinutes,
	}
	if err := s.workouts.Create(ctx, workout); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventWorkoutLogged, workout)
	return workout, nil
}

// ListMine returns the caller's own workouts.
func (s *WorkoutService) ListMine(ctx context.Context, principal *auth.Principal, limit, offset int) ([]domain.Workout, error) {
	return s.workouts.ListByUser(ctx, principal.UserID(), limit, offset)
}

// ListAll returns every user's workouts, admin only.
func (s *WorkoutService) ListAll(ctx context.Context, principal *auth.Principal, limit, offset int) ([]domain.Workout, error) {
	if !principal.IsAdmin() {
		return nil, apperrors.NewForbidden("you are not an admin")
	}
	return s.workouts.ListAll(ctx, limit, offset)
}

// Get returns one workout if the caller owns it or is an admin.
func (s *WorkoutService) Get(ctx context.Context, principal *auth.Principal, id int64) (*domain.Workout, error) {
	workout, err := s.workouts.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("workout", nil)
		}
		return nil, err
	}
	if err := authorizeOwner(principal, workout.UserID); err != nil {
		return nil, err
	}
	return workout, nil
}

// Update replaces the mutable fields of an owned workout.
func (s *WorkoutService) Update(ctx context.Context, principal *auth.Principal, id int64, input WorkoutInput) (*domain.Workout, error) {
	workout, err := s.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	workout.Date = input.Date
	workout.DurationMinutes = input.DurationMinutes
	if err := s.workouts.Update(ctx, workout); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventWorkoutUpdated, workout)
	return workout, nil
}

// Delete removes an owned workout.
func (s *WorkoutService) Delete(ctx context.Context, principal *auth.Principal, id int64) error {
	workout, err := s.Get(ctx, principal, id)
	if err != nil {
		return err
	}
	if err := s.workouts.Delete(ctx, id); err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventWorkoutDeleted, workout.UserID, events.WorkoutDeletedPayload{
			WorkoutID: workout.ID,
		}))
	}
	return nil
}

func (s *WorkoutService) publish(ctx context.Context, eventType events.EventType, workout *domain.Workout) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(eventType, workout.UserID, events.WorkoutLoggedPayload{
		WorkoutID:       workout.ID,
		Date:            workout.Date,
		DurationMinutes: workout.DurationMinutes,
	}))
}
