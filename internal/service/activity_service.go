package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/fitness-tracker/internal/auth"
	"github.com/spec-kit/fitness-tracker/internal/domain"
	"github.com/spec-kit/fitness-tracker/internal/repository"
	apperrors "github.com/spec-kit/fitness-tracker/pkg/util"
)

// ActivityService owns activity CRUD with uniform ownership checks.
type ActivityService struct {
	activities repository.ActivityRepository
}

// NewActivityService builds the service.
func NewActivityService(activities repository.ActivityRepository) *ActivityService {
	return &ActivityService{activities: activities}
}

// ActivityInput carries client-supplied activity fields.
type ActivityInput struct {
	Name        string
	Description string
}

func (in ActivityInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	return nil
}

// Create records a new activity for the caller.
func (s *ActivityService) Create(ctx context.Context, principal *auth.Principal, input ActivityInput) (*domain.Activity, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	activity := &domain.Activity{
		UserID:      principal.UserID(),
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// ListMine returns the caller's own activities.
func (s *ActivityService) ListMine(ctx context.Context, principal *auth.Principal, limit, offset int) ([]domain.Activity, error) {
	return s.activities.ListByUser(ctx, principal.UserID(), limit, offset)
}

// ListAll returns every user's activities, admin only.
func (s *ActivityService) ListAll(ctx context.Context, principal *auth.Principal, limit, offset int) ([]domain.Activity, error) {
	if !principal.IsAdmin() {
		return nil, apperrors.NewForbidden("you are not an admin")
	}
	return s.activities.ListAll(ctx, limit, offset)
}

// Get returns one activity if the caller owns it or is an admin.
func (s *ActivityService) Get(ctx context.Context, principal *auth.Principal, id int64) (*domain.Activity, error) {
	activity, err := s.activities.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("activity", nil)
		}
		return nil, err
	}
	if err := authorizeOwner(principal, activity.UserID); err != nil {
		return nil, err
	}
	return activity, nil
}

// Update replaces the mutable fields of an owned activity.
func (s *ActivityService) Update(ctx context.Context, principal *auth.Principal, id int64, input ActivityInput) (*domain.Activity, error) {
	activity, err := s.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	activity.Name = input.Name
	activity.Description = input.Description
	if err := s.activities.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Delete removes an owned activity.
func (s *ActivityService) Delete(ctx context.Context, principal *auth.Principal, id int64) error {
	if _, err := s.Get(ctx, principal, id); err != nil {
		return err
	}
	return s.activities.Delete(ctx, id)
}
