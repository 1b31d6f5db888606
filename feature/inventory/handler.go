package inventory

import (
	"errors"

	"furnishing-helper/core/logger"
	"furnishing-helper/core/middleware/auth"
	"furnishing-helper/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UpdateRequest is the body of a category update. Version is optional;
// when set, the write only succeeds against that version.
type UpdateRequest[R any] struct {
	Rows    []R   `json:"rows"`
	Version int64 `json:"version,omitempty"`
}

// CharactersUpdate is the body of PUT /inventory/characters.
type CharactersUpdate = UpdateRequest[models.CharacterRow]

// QuantitiesUpdate is the body of PUT /inventory/materials and /inventory/furnishings.
type QuantitiesUpdate = UpdateRequest[models.QuantityRow]

// SetsUpdate is the body of PUT /inventory/sets.
type SetsUpdate = UpdateRequest[models.SetRow]

// Handler handles HTTP requests for inventories.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/", h.HandleGetInventory)
	group.Put("/characters", h.HandlePutCharacters)
	group.Put("/materials", h.quantities(models.CategoryMaterials))
	group.Put("/furnishings", h.quantities(models.CategoryFurnishings))
	group.Put("/sets", h.HandlePutSets)
}

// HandleGetInventory returns the reconciled tables of the caller.
// @Summary Get Inventory
// @Description Get the caller's characters, materials, furnishings and set claims, with every catalog entry present.
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Tables "Inventory tables"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory [get]
func (h *Handler) HandleGetInventory(c *fiber.Ctx) error {
	l := logger.WithRequest(h.service.logger, c)

	tables, err := h.service.Tables(c.Context(), auth.UserID(c))
	if err != nil {
		l.Error("Failed to load inventory", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(tables)
}

// HandlePutCharacters saves the characters table.
// @Summary Save Characters
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CharactersUpdate true "Characters table"
// @Success 200 {object} map[string]bool "Saved"
// @Failure 400 {object} map[string]string "Invalid rows"
// @Failure 404 {object} map[string]string "Inventory not found"
// @Failure 409 {object} map[string]string "Version conflict"
// @Router /inventory/characters [put]
func (h *Handler) HandlePutCharacters(c *fiber.Ctx) error {
	var req CharactersUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	err := h.service.SaveCharacters(c.Context(), auth.UserID(c), req.Rows, req.Version)
	return h.respond(c, models.CategoryCharacters, err)
}

// quantities returns the handler for a materials or furnishings update.
// @Summary Save Materials or Furnishings
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body QuantitiesUpdate true "Quantities table"
// @Success 200 {object} map[string]bool "Saved"
// @Failure 400 {object} map[string]string "Invalid rows"
// @Failure 404 {object} map[string]string "Inventory not found"
// @Failure 409 {object} map[string]string "Version conflict"
// @Router /inventory/materials [put]
// @Router /inventory/furnishings [put]
func (h *Handler) quantities(category models.Category) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req QuantitiesUpdate
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		err := h.service.SaveQuantities(c.Context(), auth.UserID(c), category, req.Rows, req.Version)
		return h.respond(c, category, err)
	}
}

// HandlePutSets saves the set claims table.
// @Summary Save Set Claims
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SetsUpdate true "Sets table"
// @Success 200 {object} map[string]bool "Saved"
// @Failure 400 {object} map[string]string "Invalid rows"
// @Failure 404 {object} map[string]string "Inventory not found"
// @Failure 409 {object} map[string]string "Version conflict"
// @Router /inventory/sets [put]
func (h *Handler) HandlePutSets(c *fiber.Ctx) error {
	var req SetsUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	err := h.service.SaveSets(c.Context(), auth.UserID(c), req.Rows, req.Version)
	return h.respond(c, models.CategorySets, err)
}

func (h *Handler) respond(c *fiber.Ctx, category models.Category, err error) error {
	if err == nil {
		return c.JSON(fiber.Map{"saved": true})
	}

	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "invalid rows",
			"problems": verr.Problems,
		})
	case errors.Is(err, ErrInventoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrVersionConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	logger.WithRequest(h.service.logger, c).Error("Failed to save inventory",
		zap.String("category", string(category)), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
