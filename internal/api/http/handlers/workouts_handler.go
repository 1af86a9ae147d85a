package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fitness-tracker/internal/api/dto"
	"github.com/spec-kit/fitness-tracker/internal/domain"
	"github.com/spec-kit/fitness-tracker/internal/service"
	apperrors "github.com/spec-kit/fitness-tracker/pkg/util"
)

const workoutDateLayout = "2006-01-02"

// WorkoutsHandler manages workout endpoints.
type WorkoutsHandler struct {
	service *service.WorkoutService
}

// NewWorkoutsHandler constructs handler.
func NewWorkoutsHandler(workoutService *service.WorkoutService) *WorkoutsHandler {
	return &WorkoutsHandler{service: workoutService}
}

// Log POST /workouts.
func (h *WorkoutsHandler) Log(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	input, err := workoutInput(c)
	if err != nil {
		return err
	}
	workout, err := h.service.Log(c.Context(), principal, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": workoutResponse(workout)})
}

// List GET /workouts. Admins may pass all=true to see every user's workouts.
func (h *WorkoutsHandler) List(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	limit, offset := pagination(c)

	var workouts []domain.Workout
	if c.QueryBool("all", false) {
		workouts, err = h.service.ListAll(c.Context(), principal, limit, offset)
	} else {
		workouts, err = h.service.ListMine(c.Context(), principal, limit, offset)
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": workoutResponses(workouts)})
}

// Get GET /workouts/:id.
func (h *WorkoutsHandler) Get(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	workout, err := h.service.Get(c.Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": workoutResponse(workout)})
}

// Update PUT /workouts/:id.
func (h *WorkoutsHandler) Update(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	input, err := workoutInput(c)
	if err != nil {
		return err
	}
	workout, err := h.service.Update(c.Context(), principal, id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": workoutResponse(workout)})
}

// Delete DELETE /workouts/:id.
func (h *WorkoutsHandler) Delete(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), principal, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func workoutInput(c *fiber.Ctx) (service.WorkoutInput, error) {
	var req dto.WorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return service.WorkoutInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Date == "" {
		return service.WorkoutInput{}, apperrors.NewValidationError("date required", nil)
	}
	date, err := time.Parse(workoutDateLayout, req.Date)
	if err != nil {
		return service.WorkoutInput{}, apperrors.NewValidationError("date must be YYYY-MM-DD", nil)
	}
	return service.WorkoutInput{Date: date, DurationMinutes: req.DurationMinutes}, nil
}

func workoutResponse(workout *domain.Workout) dto.WorkoutResponse {
	return dto.WorkoutResponse{
		ID:              workout.ID,
		UserID:          workout.UserID,
		Date:            workout.Date.Format(workoutDateLayout),
		DurationMinutes: workout.DurationMinutes,
	}
}

func workoutResponses(workouts []domain.Workout) []dto.WorkoutResponse {
	items := make([]dto.WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		items = append(items, workoutResponse(&workouts[i]))
	}
	return items
}
