package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pixelcraft/agency-backoffice/internal/api/dto"
	"github.com/pixelcraft/agency-backoffice/internal/auth"
	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/scope"
	"github.com/pixelcraft/agency-backoffice/internal/service"
	apperrors "github.com/pixelcraft/agency-backoffice/pkg/util"
)

// QuotesHandler manages back-office quote endpoints.
type QuotesHandler struct {
	listing *service.ListingService
	quotes  *service.QuoteService
	scopes  *scope.Resolver
}

// NewQuotesHandler constructs handler.
func NewQuotesHandler(listing *service.ListingService, quotes *service.QuoteService, scopes *scope.Resolver) *QuotesHandler {
	return &QuotesHandler{listing: listing, quotes: quotes, scopes: scopes}
}

// List GET /admin/quotes.
func (h *QuotesHandler) List(c *fiber.Ctx) error {
	sc := deriveScope(c, h.scopes)
	quotes, err := h.listing.ListQuotes(c.UserContext(), sc)
	if err != nil {
		return err
	}
	items := make([]dto.QuoteResponse, 0, len(quotes))
	for i := range quotes {
		items = append(items, quoteResponse(&quotes[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateStatus PATCH /admin/quotes/:id/status.
func (h *QuotesHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	identity := auth.IdentityFromContext(c)
	quote, err := h.quotes.UpdateStatus(c.UserContext(), identity.UserID, c.Params("id"), domain.QuoteStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": quoteResponse(quote)})
}

// Convert POST /admin/quotes/:id/convert.
func (h *QuotesHandler) Convert(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	project, quote, err := h.quotes.ConvertToProject(c.UserContext(), identity.UserID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.ConvertQuoteResponse{
		Project: projectResponse(project),
		Quote:   quoteResponse(quote),
	}})
}

func quoteResponse(quote *domain.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		ID:            quote.ID,
		ClientID:      quote.ClientID,
		Title:         quote.Title,
		Description:   quote.Description,
		EstimatedCost: quote.EstimatedCost,
		Status:        quote.Status,
		Metadata:      quote.Metadata,
		CreatedAt:     quote.CreatedAt,
	}
}

func projectResponse(project *domain.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:          project.ID,
		ClientID:    project.ClientID,
		Name:        project.Name,
		Description: project.Description,
		Budget:      project.Budget,
		Status:      project.Status,
		CreatedAt:   project.CreatedAt,
	}
}
