package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/volunteerhub/volunteerhub-api/internal/dto"
	"github.com/volunteerhub/volunteerhub-api/internal/service"
)

type eventServiceStub struct {
	createFn   func(ctx context.Context, creatorID uint, payload dto.EventCreateRequest) (dto.EventResponse, error)
	listFn     func(ctx context.Context, filter dto.EventFilter) ([]dto.EventResponse, error)
	getByIDFn  func(ctx context.Context, id uint) (dto.EventResponse, error)
	joinFn     func(ctx context.Context, id, userID uint) (dto.EventResponse, error)
	deleteFn   func(ctx context.Context, id, userID uint) error
	lastFilter dto.EventFilter
}

func (s *eventServiceStub) Create(ctx context.Context, creatorID uint, payload dto.EventCreateRequest) (dto.EventResponse, error) {
	if s.createFn != nil {
		return s.createFn(ctx, creatorID, payload)
	}
	return dto.EventResponse{ID: 1, Title: payload.Title}, nil
}

func (s *eventServiceStub) List(ctx context.Context, filter dto.EventFilter) ([]dto.EventResponse, error) {
	s.lastFilter = filter
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return []dto.EventResponse{}, nil
}

func (s *eventServiceStub) GetByID(ctx context.Context, id uint) (dto.EventResponse, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return dto.EventResponse{ID: id}, nil
}

func (s *eventServiceStub) Join(ctx context.Context, id, userID uint) (dto.EventResponse, error) {
	if s.joinFn != nil {
		return s.joinFn(ctx, id, userID)
	}
	return dto.EventResponse{ID: id}, nil
}

func (s *eventServiceStub) Delete(ctx context.Context, id, userID uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id, userID)
	}
	return nil
}

func newEventTestApp(stub *eventServiceStub, userID uint) *fiber.App {
	app := fiber.New()
	h := NewEventHandler(stub, zerolog.New(io.Discard))

	group := app.Group("/api/events")
	h.RegisterPublic(group)
	authed := group.Group("", func(c *fiber.Ctx) error {
		if userID != 0 {
			c.Locals("user_id", userID)
		}
		return c.Next()
	})
	h.Register(authed)

	return app
}

func TestEventHandlerCreate(t *testing.T) {
	app := newEventTestApp(&eventServiceStub{}, 1)

	req := jsonRequest(t, http.MethodPost, "/api/events", map[string]interface{}{"title": "Park Cleanup"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestEventHandlerCreateRequiresAuth(t *testing.T) {
	app := newEventTestApp(&eventServiceStub{}, 0)

	req := jsonRequest(t, http.MethodPost, "/api/events", map[string]interface{}{"title": "Park Cleanup"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestEventHandlerListIsPublicAndAppliesFilters(t *testing.T) {
	stub := &eventServiceStub{}
	app := newEventTestApp(stub, 0)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/events?category=environment&location=Park", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, stub.lastFilter.Category)
	require.Equal(t, "environment", *stub.lastFilter.Category)
	require.NotNil(t, stub.lastFilter.Location)
	require.Equal(t, "Park", *stub.lastFilter.Location)
}

func TestEventHandlerGetByIDInvalidParam(t *testing.T) {
	app := newEventTestApp(&eventServiceStub{}, 0)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/events/abc", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEventHandlerJoinErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: service.ErrEventNotFound, status: fiber.StatusNotFound},
		{name: "duplicate join", err: service.ErrAlreadyAttending, status: fiber.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &eventServiceStub{
				joinFn: func(ctx context.Context, id, userID uint) (dto.EventResponse, error) {
					return dto.EventResponse{}, tc.err
				},
			}
			app := newEventTestApp(stub, 2)

			resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/events/1/join", nil))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestEventHandlerDeleteForbidden(t *testing.T) {
	stub := &eventServiceStub{
		deleteFn: func(ctx context.Context, id, userID uint) error {
			return service.ErrForbidden
		},
	}
	app := newEventTestApp(stub, 2)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/events/1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
