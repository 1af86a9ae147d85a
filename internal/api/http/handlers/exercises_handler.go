package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fitness-tracker/internal/api/dto"
	"github.com/spec-kit/fitness-tracker/internal/domain"
	"github.com/spec-kit/fitness-tracker/internal/service"
	apperrors "github.com/spec-kit/fitness-tracker/pkg/util"
)

// ExercisesHandler manages exercise endpoints.
type ExercisesHandler struct {
	service *service.ExerciseService
}

// NewExercisesHandler constructs handler.
func NewExercisesHandler(exerciseService *service.ExerciseService) *ExercisesHandler {
	return &ExercisesHandler{service: exerciseService}
}

// Log POST /exercises.
func (h *ExercisesHandler) Log(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.ExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	exercise, err := h.service.Log(c.Context(), principal, exerciseInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": exerciseResponse(exercise)})
}

// ListMine GET /exercises/mine.
func (h *ExercisesHandler) ListMine(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	limit, offset := pagination(c)
	exercises, err := h.service.ListMine(c.Context(), principal, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": exerciseResponses(exercises)})
}

// ListAll GET /exercises (admin only).
func (h *ExercisesHandler) ListAll(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	limit, offset := pagination(c)
	exercises, err := h.service.ListAll(c.Context(), principal, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": exerciseResponses(exercises)})
}

// Get GET /exercises/:id.
func (h *ExercisesHandler) Get(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	exercise, err := h.service.Get(c.Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": exerciseResponse(exercise)})
}

// Update PUT /exercises/:id.
func (h *ExercisesHandler) Update(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var req dto.ExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	exercise, err := h.service.Update(c.Context(), principal, id, exerciseInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": exerciseResponse(exercise)})
}

// Delete DELETE /exercises/:id.
func (h *ExercisesHandler) Delete(c *fiber.Ctx) error {
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

func exerciseInput(req dto.ExerciseRequest) service.ExerciseInput {
	return service.ExerciseInput{
		Name:            req.Name,
		Sets:            req.Sets,
		Repetitions:     req.Repetitions,
		WeightLifted:    req.WeightLifted,
		DistanceCovered: req.DistanceCovered,
		CaloriesBurned:  req.CaloriesBurned,
		Intensity:       req.Intensity,
		PerformedAt:     req.PerformedAt,
	}
}

func exerciseResponse(exercise *domain.Exercise) dto.ExerciseResponse {
	return dto.ExerciseResponse{
		ID:              exercise.ID,
		UserID:          exercise.UserID,
		Name:            string(exercise.Name),
		Sets:            exercise.Sets,
		Repetitions:     exercise.Repetitions,
		WeightLifted:    exercise.WeightLifted,
		DistanceCovered: exercise.DistanceCovered,
		CaloriesBurned:  exercise.CaloriesBurned,
		Intensity:       string(exercise.Intensity),
		PerformedAt:     exercise.PerformedAt,
	}
}

func exerciseResponses(exercises []domain.Exercise) []dto.ExerciseResponse {
	items := make([]dto.ExerciseResponse, 0, len(exercises))
	for i := range exercises {
		items = append(items, exerciseResponse(&exercises[i]))
	}
	return items
}
