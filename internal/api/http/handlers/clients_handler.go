package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pixelcraft/agency-backoffice/internal/api/dto"
	"github.com/pixelcraft/agency-backoffice/internal/scope"
	"github.com/pixelcraft/agency-backoffice/internal/service"
)

// ClientsHandler serves the back-office users view.
type ClientsHandler struct {
	listing *service.ListingService
	scopes  *scope.Resolver
}

// NewClientsHandler constructs handler.
func NewClientsHandler(listing *service.ListingService, scopes *scope.Resolver) *ClientsHandler {
	return &ClientsHandler{listing: listing, scopes: scopes}
}

// List GET /admin/clients.
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	sc := deriveScope(c, h.scopes)
	accounts, err := h.listing.ListClients(c.UserContext(), sc)
	if err != nil {
		return err
	}
	items := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, accountResponse(&accounts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
