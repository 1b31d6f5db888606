package catalog

import (
	"furnishing-helper/core/logger"
	"furnishing-helper/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/", h.HandleGetCatalog)
	group.Get("/plan", h.HandleGetPlan)
}

// HandleGetCatalog returns the static catalog.
// @Summary Get Catalog
// @Description Get all characters, materials, furnishings and gift sets.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Catalog "Catalog"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog [get]
func (h *Handler) HandleGetCatalog(c *fiber.Ctx) error {
	l := logger.WithRequest(h.service.logger, c)

	cat, err := h.service.Snapshot(c.Context())
	if err != nil {
		l.Error("Failed to load catalog", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(cat)
}

// HandleGetPlan reports how the database differs from the catalog document.
// Nothing is modified.
// @Summary Plan Catalog Sync
// @Description Compare the catalog tables with the catalog document in object storage.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param purge query bool false "Plan deletion of entries missing from the document"
// @Success 200 {object} SyncReport "Sync plan"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/plan [get]
func (h *Handler) HandleGetPlan(c *fiber.Ctx) error {
	l := logger.WithRequest(h.service.logger, c)

	opts := reconcile.Options{
		DoSync:  true,
		DoPurge: c.QueryBool("purge", false),
		DryRun:  true,
	}
	report, err := h.service.Sync(c.Context(), opts)
	if err != nil {
		l.Error("Catalog plan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}
