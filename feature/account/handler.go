package account

import (
	"errors"

	"furnishing-helper/core/logger"
	"furnishing-helper/feature/account/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for accounts.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the account routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/account")
	group.Post("/register", h.HandleRegister)
	group.Post("/login", h.HandleLogin)
}

// HandleRegister creates an account.
// @Summary Register
// @Tags account
// @Accept json
// @Produce json
// @Param body body models.Credentials true "Credentials"
// @Success 201 {object} models.Account "Created account"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Username taken"
// @Router /account/register [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var creds models.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	acc, err := h.service.Register(c.Context(), creds)
	switch {
	case errors.Is(err, ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Account registered", zap.String("user_id", acc.ID))
	return c.Status(fiber.StatusCreated).JSON(acc)
}

// HandleLogin exchanges credentials for a bearer token.
// @Summary Login
// @Tags account
// @Accept json
// @Produce json
// @Param body body models.Credentials true "Credentials"
// @Success 200 {object} models.Session "Session"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /account/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	var creds models.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	session, err := h.service.Login(c.Context(), creds)
	if errors.Is(err, ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(session)
}
