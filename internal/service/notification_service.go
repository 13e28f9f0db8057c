package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/pixelcraft/agency-backoffice/internal/events"
)

// NotificationService logs a trail for back-office mutations. Delivery
// beyond structured logs is out of scope; handlers stay cheap because the
// dispatcher is synchronous.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventTicketStatusChanged,
		events.EventTicketAssigned,
		events.EventQuoteStatusChanged,
		events.EventQuoteConverted,
		events.EventInvoiceStatusChanged,
		events.EventBookingStatusChanged,
		events.EventBookingRescheduled,
		events.EventContentPublishFlip,
	} {
		n.dispatcher.Subscribe(eventType, n.logEvent)
	}
}

func (n *NotificationService) logEvent(ctx context.Context, event events.Event) error {
	n.logger.Info("mutation",
		zap.String("event", string(event.Type)),
		zap.String("entity_id", event.EntityID),
		zap.String("actor_id", event.ActorID),
		zap.Any("payload", event.Payload))
	return nil
}
