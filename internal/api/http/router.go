package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ADITHIYAN008/backend/internal/api/http/handlers"
	"github.com/ADITHIYAN008/backend/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Batches        *handlers.BatchesHandler
	Employees      *handlers.EmployeesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Everything except /login and the
// liveness probe sits behind the bearer-token gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)

	app.Post("/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/auth/validate", cfg.Auth.Validate)
	protected.Get("/profile", cfg.Auth.Profile)

	protected.Get("/batches", cfg.Batches.List)
	protected.Post("/batches", cfg.Batches.Create)
	protected.Put("/batches/:code", cfg.Batches.Update)

	protected.Get("/users", cfg.Employees.List)
	protected.Post("/users", cfg.Employees.Create)
	protected.Put("/users/:id", cfg.Employees.Update)
	protected.Post("/users/bulk", cfg.Employees.BulkUpload)
}
