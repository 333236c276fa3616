package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Staff     *handlers.StaffHandler
	Lifecycle *handlers.LifecycleHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	staff := app.Group("/staff")
	staff.Post("/", cfg.Staff.Create)
	staff.Get("/:id", cfg.Staff.Get)
	staff.Put("/:id", cfg.Staff.Update)
	staff.Put("/:id/address", cfg.Staff.UpdateAddress)

	employees := app.Group("/employees")
	employees.Post("/:id/hire", cfg.Lifecycle.Hire)
	employees.Post("/:id/terminate", cfg.Lifecycle.Terminate)
	employees.Post("/:id/rehire", cfg.Lifecycle.Rehire)
	employees.Get("/:id/lifecycle", cfg.Lifecycle.Status)
	employees.Get("/:id/history", cfg.Lifecycle.History)
}
