package requirements

import (
	"furnishing-helper/core/logger"
	"furnishing-helper/core/middleware/auth"
	"furnishing-helper/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for requirement calculations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the requirements routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/requirements", h.HandleCompute)
}

// HandleCompute calculates furnishings to craft or buy and the material shortfall.
// @Summary Compute Requirements
// @Description Compute what is still needed to claim every eligible gift set. Send edited tables to calculate on unsaved changes; an empty body uses the stored inventory.
// @Tags requirements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.Tables false "Edited inventory tables"
// @Success 200 {object} Result "Requirements"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /requirements [post]
func (h *Handler) HandleCompute(c *fiber.Ctx) error {
	l := logger.WithRequest(h.service.logger, c)

	var edited *models.Tables
	if len(c.Body()) > 0 {
		edited = &models.Tables{}
		if err := c.BodyParser(edited); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}

	res, err := h.service.Compute(c.Context(), auth.UserID(c), edited)
	if err != nil {
		l.Error("Requirements calculation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(res)
}
