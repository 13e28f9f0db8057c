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

// InvoicesHandler manages back-office invoice endpoints.
type InvoicesHandler struct {
	listing  *service.ListingService
	invoices *service.InvoiceService
	scopes   *scope.Resolver
}

// NewInvoicesHandler constructs handler.
func NewInvoicesHandler(listing *service.ListingService, invoices *service.InvoiceService, scopes *scope.Resolver) *InvoicesHandler {
	return &InvoicesHandler{listing: listing, invoices: invoices, scopes: scopes}
}

// List GET /admin/invoices.
func (h *InvoicesHandler) List(c *fiber.Ctx) error {
	sc := deriveScope(c, h.scopes)
	invoices, err := h.listing.ListInvoices(c.UserContext(), sc)
	if err != nil {
		return err
	}
	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, invoiceResponse(&invoices[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateStatus PATCH /admin/invoices/:id/status.
func (h *InvoicesHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	identity := auth.IdentityFromContext(c)
	invoice, err := h.invoices.UpdateStatus(c.UserContext(), identity.UserID, c.Params("id"), domain.InvoiceStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": invoiceResponse(invoice)})
}

func invoiceResponse(invoice *domain.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:        invoice.ID,
		ClientID:  invoice.ClientID,
		Number:    invoice.Number,
		Amount:    invoice.Amount,
		Status:    invoice.Status,
		DueDate:   invoice.DueDate,
		CreatedAt: invoice.CreatedAt,
	}
}
