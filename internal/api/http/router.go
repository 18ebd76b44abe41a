package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-registration/internal/api/http/handlers"
	"github.com/spec-kit/event-registration/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Events         *handlers.EventsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Protected routes pass through the auth
// middleware; admin routes additionally require the admin role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	authGroup.Get("/verify", cfg.AuthMiddleware.Handle, auth.RequireAccount(), cfg.Auth.Verify)
	authGroup.Get("/check-role", cfg.AuthMiddleware.Handle, auth.RequireAccount(), cfg.Auth.CheckRole)

	// Guards are attached per route here: a group-level Use on /api/events
	// would also intercept the public "GET /:id" registered below it.
	eventsGroup := api.Group("/events")
	eventsGroup.Get("/", cfg.Events.List)
	eventsGroup.Get("/registrations/mine", cfg.AuthMiddleware.Handle, auth.RequireAccount(), cfg.Events.MyRegistrations)
	eventsGroup.Post("/:id/register", cfg.AuthMiddleware.Handle, auth.RequireAccount(), cfg.Events.Register)
	eventsGroup.Delete("/:id/register", cfg.AuthMiddleware.Handle, auth.RequireAccount(), cfg.Events.Unregister)

	// Registered after the more specific routes so ":id" does not shadow them.
	eventsGroup.Get("/:id", cfg.Events.Get)

	adminGroup := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	adminGroup.Get("/registrations", cfg.Admin.ListAccountRegistrations)
	adminGroup.Put("/registrations/:id", cfg.Admin.ReviewAccount)

	adminGroup.Get("/event-registrations", cfg.Admin.ListEventRegistrations)
	adminGroup.Put("/event-registrations/:id", cfg.Admin.UpdateEventRegistration)

	adminGroup.Post("/events", cfg.Admin.CreateEvent)
	adminGroup.Put("/events/:id", cfg.Admin.UpdateEvent)
	adminGroup.Delete("/events/:id", cfg.Admin.DeleteEvent)

	adminGroup.Get("/categories", cfg.Admin.ListCategories)
	adminGroup.Post("/categories", cfg.Admin.CreateCategory)
	adminGroup.Delete("/categories/:id", cfg.Admin.DeleteCategory)
}
