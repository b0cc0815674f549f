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

// HelpRequestHandler manages help request endpoints.
type HelpRequestHandler struct {
	service service.HelpRequestService
	logger  zerolog.Logger
}

// NewHelpRequestHandler builds a help request handler instance.
func NewHelpRequestHandler(service service.HelpRequestService, logger zerolog.Logger) *HelpRequestHandler {
	return &HelpRequestHandler{
		service: service,
		logger:  logger.With().Str("component", "help_request_handler").Logger(),
	}
}

// Register attaches the authenticated routes to the provided router group.
func (h *HelpRequestHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Post("/:id/volunteer", h.volunteer)
	router.Delete("/:id", h.delete)
}

// RegisterPublic attaches the unauthenticated routes to the provided router group.
func (h *HelpRequestHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.getByID)
}

func (h *HelpRequestHandler) create(c *fiber.Ctx) error {
	userID := userIDFromContext(c)
	if userID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var payload dto.HelpRequestCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	request, err := h.service.Create(c.Context(), userID, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "help request created", request)
}

func (h *HelpRequestHandler) list(c *fiber.Ctx) error {
	filter := dto.HelpRequestFilter{}
	if urgency := c.Query("urgency"); urgency != "" {
		filter.Urgency = &urgency
	}
	if location := c.Query("location"); location != "" {
		filter.Location = &location
	}

	requests, err := h.service.List(c.Context(), filter)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "help requests retrieved", requests)
}

func (h *HelpRequestHandler) getByID(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	request, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "help request retrieved", request)
}

func (h *HelpRequestHandler) volunteer(c *fiber.Ctx) error {
	userID := userIDFromContext(c)
	if userID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	request, err := h.service.Volunteer(c.Context(), id, userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "you have volunteered successfully", request)
}

func (h *HelpRequestHandler) delete(c *fiber.Ctx) error {
	userID := userIDFromContext(c)
	if userID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), id, userID); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "help request deleted successfully", nil)
}

func (h *HelpRequestHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrHelpRequestNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "help request not found")
	case errors.Is(err, service.ErrUserNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrAlreadyVolunteered):
		return utils.SendError(c, fiber.StatusConflict, "you are already a volunteer for this request")
	case errors.Is(err, service.ErrForbidden):
		return utils.SendError(c, fiber.StatusForbidden, "unauthorized")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
