package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pixelcraft/agency-backoffice/internal/api/dto"
	"github.com/pixelcraft/agency-backoffice/internal/scope"
	"github.com/pixelcraft/agency-backoffice/internal/service"
)

// ProjectsHandler serves the back-office projects view.
type ProjectsHandler struct {
	listing *service.ListingService
	scopes  *scope.Resolver
}

// NewProjectsHandler constructs handler.
func NewProjectsHandler(listing *service.ListingService, scopes *scope.Resolver) *ProjectsHandler {
	return &ProjectsHandler{listing: listing, scopes: scopes}
}

// List GET /admin/projects.
func (h *ProjectsHandler) List(c *fiber.Ctx) error {
	sc := deriveScope(c, h.scopes)
	projects, err := h.listing.ListProjects(c.UserContext(), sc)
	if err != nil {
		return err
	}
	items := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		items = append(items, projectResponse(&projects[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
