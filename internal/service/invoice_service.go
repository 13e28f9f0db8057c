package service

import (
	"context"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/events"
	"github.com/pixelcraft/agency-backoffice/internal/repository"
	apperrors "github.com/pixelcraft/agency-backoffice/pkg/util"
)

// InvoiceService applies invoice mutations.
type InvoiceService struct {
	invoices   repository.InvoiceRepository
	dispatcher events.Dispatcher
}

// NewInvoiceService constructs the service.
func NewInvoiceService(invoices repository.InvoiceRepository, dispatcher events.Dispatcher) *InvoiceService {
	return &InvoiceService{invoices: invoices, dispatcher: dispatcher}
}

// UpdateStatus writes a new status, validating enum membership first.
func (s *InvoiceService) UpdateStatus(ctx context.Context, actorID, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	if !domain.ValidInvoiceStatus(status) {
		return nil, apperrors.NewValidationError("invalid invoice status", map[string]any{"status": status})
	}
	invoice, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	oldStatus := invoice.Status
	invoice.Status = status
	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, apperrors.MapError(err)
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventInvoiceStatusChanged,
		EntityID: invoice.ID,
		ActorID:  actorID,
		Payload:  events.InvoiceStatusChangedPayload{OldStatus: oldStatus, NewStatus: status},
	})
	return invoice, nil
}
