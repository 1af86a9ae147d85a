package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fitness-tracker/internal/api/dto"
	"github.com/spec-kit/fitness-tracker/internal/domain"
	"github.com/spec-kit/fitness-tracker/internal/service"
	apperrors "github.com/spec-kit/fitness-tracker/pkg/util"
)

// ActivitiesHandler manages activity endpoints.
type ActivitiesHandler struct {
	service *service.ActivityService
}

// NewActivitiesHandler constructs handler.
func NewActivitiesHandler(activityService *service.ActivityService) *ActivitiesHandler {
	return &ActivitiesHandler{service: activityService}
}

// Create POST /activities.
func (h *ActivitiesHandler) Create(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	activity, err := h.service.Create(c.Context(), principal, service.ActivityInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": activityResponse(activity)})
}

// List GET /activities. Admins may pass all=true to see every user's rows.
func (h *ActivitiesHandler) List(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	limit, offset := pagination(c)

	var activities []domain.Activity
	if c.QueryBool("all", false) {
		activities, err = h.service.ListAll(c.Context(), principal, limit, offset)
	} else {
		activities, err = h.service.ListMine(c.Context(), principal, limit, offset)
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": activityResponses(activities)})
}

// Get GET /activities/:id.
func (h *ActivitiesHandler) Get(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	activity, err := h.service.Get(c.Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": activityResponse(activity)})
}

// Update PUT /activities/:id.
func (h *ActivitiesHandler) Update(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var req dto.ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	activity, err := h.service.Update(c.Context(), principal, id, service.ActivityInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": activityResponse(activity)})
}

// Delete DELETE /activities/:id.
func (h *ActivitiesHandler) Delete(c *fiber.Ctx) error {
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

func activityResponse(activity *domain.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:          activity.ID,
		UserID:      activity.UserID,
		Name:        activity.Name,
		Description: activity.Description,
	}
}

func activityResponses(activities []domain.Activity) []dto.ActivityResponse {
	items := make([]dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		items = append(items, activityResponse(&activities[i]))
	}
	return items
}
