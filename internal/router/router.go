package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/volunteerhub/volunteerhub-api/internal/config"
	"github.com/volunteerhub/volunteerhub-api/internal/handler"
	"github.com/volunteerhub/volunteerhub-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	UserHandler        *handler.UserHandler
	ImpactHandler      *handler.ImpactHandler
	EventHandler       *handler.EventHandler
	TeamHandler        *handler.TeamHandler
	HelpRequestHandler *handler.HelpRequestHandler
	JWTMiddleware      fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	// Common v1 group for health & headers
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	// Accounts: registration and login are public, the profile requires auth.
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterPublic(app.Group("/api/users"))
		deps.UserHandler.RegisterProfile(app.Group("/api/profile", jwtMiddleware))
	}

	// Impact: the leaderboard is public, everything else requires auth.
	if deps.ImpactHandler != nil {
		impact := app.Group("/api/impact")
		deps.ImpactHandler.RegisterPublic(impact)
		deps.ImpactHandler.Register(impact.Group("", jwtMiddleware))
	}

	if deps.EventHandler != nil {
		events := app.Group("/api/events")
		deps.EventHandler.RegisterPublic(events)
		deps.EventHandler.Register(events.Group("", jwtMiddleware))
	}

	if deps.HelpRequestHandler != nil {
		helpRequests := app.Group("/api/help-requests")
		deps.HelpRequestHandler.RegisterPublic(helpRequests)
		deps.HelpRequestHandler.Register(helpRequests.Group("", jwtMiddleware))
	}

	if deps.TeamHandler != nil {
		teams := app.Group("/api/teams")
		deps.TeamHandler.RegisterPublic(teams)
		deps.TeamHandler.Register(teams.Group("", jwtMiddleware))
	}
}
