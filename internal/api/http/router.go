package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pixelcraft/agency-backoffice/internal/api/http/handlers"
	"github.com/pixelcraft/agency-backoffice/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Dashboard      *handlers.DashboardHandler
	Tickets        *handlers.TicketsHandler
	Quotes         *handlers.QuotesHandler
	Invoices       *handlers.InvoicesHandler
	Bookings       *handlers.BookingsHandler
	Clients        *handlers.ClientsHandler
	Projects       *handlers.ProjectsHandler
	Content        *handlers.ContentHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)

	public := app.Group("/public")
	public.Get("/content/:kind", cfg.Content.ListPublished)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireBackOffice())
	admin.Get("/dashboard", cfg.Dashboard.Counts)

	admin.Get("/tickets", cfg.Tickets.List)
	admin.Patch("/tickets/:id/status", cfg.Tickets.UpdateStatus)
	admin.Patch("/tickets/:id/priority", cfg.Tickets.UpdatePriority)
	admin.Patch("/tickets/:id/assign", cfg.Tickets.Assign)
	admin.Patch("/tickets/:id/project", cfg.Tickets.AttachProject)

	admin.Get("/quotes", cfg.Quotes.List)
	admin.Patch("/quotes/:id/status", cfg.Quotes.UpdateStatus)
	admin.Post("/quotes/:id/convert", cfg.Quotes.Convert)

	admin.Get("/invoices", cfg.Invoices.List)
	admin.Patch("/invoices/:id/status", cfg.Invoices.UpdateStatus)

	admin.Get("/bookings", cfg.Bookings.List)
	admin.Patch("/bookings/:id/status", cfg.Bookings.UpdateStatus)
	admin.Patch("/bookings/:id/reschedule", cfg.Bookings.Reschedule)

	admin.Get("/clients", cfg.Clients.List)
	admin.Get("/projects", cfg.Projects.List)

	// Content management stays admin-only; staff scope has no meaning for
	// site-wide content.
	content := admin.Group("/content", auth.RequireAdmin())
	content.Get("/:kind", cfg.Content.ListAll)
	content.Post("/:kind/:id/publish-toggle", cfg.Content.TogglePublish)
}
