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

// EventHandler manages event endpoints.
type EventHandler struct {
	service service.EventService
	logger  zerolog.Logger
}

// NewEventHandler builds an event handler instance.
func NewEventHandler(service service.EventService, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger.With().Str("component", "event_handler").Logger(),
	}
}

// Register attaches the authenticated routes to the provided router group.
func (h *EventHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Post("/:id/join", h.join)
	router.Delete("/:id", h.delete)
}

// RegisterPublic attaches the unauthenticated routes to the provided router group.
func (h *EventHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.getByID)
}

func (h *EventHandler) create(c *fiber.Ctx) error {
	userID := userIDFromContext(c)
	if userID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var payload dto.EventCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	event, err := h.service.Create(c.Context(), userID, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "event created", event)
}

func (h *EventHandler) list(c *fiber.Ctx) error {
	filter := dto.EventFilter{}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if location := c.Query("location"); location != "" {
		filter.Location = &location
	}

	events, err := h.service.List(c.Context(), filter)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "events retrieved", events)
}

func (h *EventHandler) getByID(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	event, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "event retrieved", event)
}

func (h *EventHandler) join(c *fiber.Ctx) error {
	userID := userIDFromContext(c)
	if userID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	event, err := h.service.Join(c.Context(), id, userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "joined event successfully", event)
}

func (h *EventHandler) delete(c *fiber.Ctx) error {
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

	return utils.SendSuccess(c, "event deleted successfully", nil)
}

func (h *EventHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "event not found")
	case errors.Is(err, service.ErrUserNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrAlreadyAttending):
		return utils.SendError(c, fiber.StatusConflict, "you are already attending this event")
	case errors.Is(err, service.ErrForbidden):
		return utils.SendError(c, fiber.StatusForbidden, "unauthorized")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
