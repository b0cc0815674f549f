package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/volunteerhub/volunteerhub-api/internal/dto"
	"github.com/volunteerhub/volunteerhub-api/internal/service"
	"github.com/volunteerhub/volunteerhub-api/internal/utils"
)

// ImpactHandler manages impact logging, verification, points and leaderboard endpoints.
type ImpactHandler struct {
	service service.ImpactService
	logger  zerolog.Logger
}

// NewImpactHandler builds an impact handler instance.
func NewImpactHandler(service service.ImpactService, logger zerolog.Logger) *ImpactHandler {
	return &ImpactHandler{
		service: service,
		logger:  logger.With().Str("component", "impact_handler").Logger(),
	}
}

// Register attaches the authenticated routes to the provided router group.
func (h *ImpactHandler) Register(router fiber.Router) {
	router.Post("/log-hours", h.logHours)
	router.Post("/verify-hours", h.verifyHours)
	router.Get("/points", h.points)
}

// RegisterPublic attaches the unauthenticated routes to the provided router group.
func (h *ImpactHandler) RegisterPublic(router fiber.Router) {
	router.Get("/leaderboard", h.leaderboard)
}

func (h *ImpactHandler) logHours(c *fiber.Ctx) error {
	userID := userIDFromContext(c)
	if userID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var payload dto.LogHoursRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	log, err := h.service.LogHours(c.Context(), userID, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "hours logged", log)
}

func (h *ImpactHandler) verifyHours(c *fiber.Ctx) error {
	verifierID := userIDFromContext(c)
	if verifierID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var payload dto.VerifyHoursRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	log, err := h.service.VerifyHours(c.Context(), verifierID, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "hours verified", log)
}

func (h *ImpactHandler) points(c *fiber.Ctx) error {
	userID := userIDFromContext(c)
	if userID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	summary, err := h.service.GetUserPoints(c.Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "points retrieved", summary)
}

func (h *ImpactHandler) leaderboard(c *fiber.Ctx) error {
	entries, err := h.service.GetLeaderboard(c.Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "leaderboard retrieved", entries)
}

func (h *ImpactHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrImpactLogNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "impact log not found")
	case errors.Is(err, service.ErrUserNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrSelfVerification):
		return utils.SendError(c, fiber.StatusForbidden, "cannot verify your own hours")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
