package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/events"
	"github.com/pixelcraft/agency-backoffice/internal/repository"
	apperrors "github.com/pixelcraft/agency-backoffice/pkg/util"
)

// QuoteService applies quote mutations, including the quote-to-project
// conversion.
type QuoteService struct {
	quotes     repository.QuoteRepository
	projects   repository.ProjectRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewQuoteService constructs the service.
func NewQuoteService(quotes repository.QuoteRepository, projects repository.ProjectRepository, dispatcher events.Dispatcher, logger *zap.Logger) *QuoteService {
	return &QuoteService{quotes: quotes, projects: projects, dispatcher: dispatcher, logger: logger}
}

// UpdateStatus writes a new status, validating enum membership first.
func (s *QuoteService) UpdateStatus(ctx context.Context, actorID, quoteID string, status domain.QuoteStatus) (*domain.Quote, error) {
	if !domain.ValidQuoteStatus(status) {
		return nil, apperrors.NewValidationError("invalid quote status", map[string]any{"status": status})
	}
	quote, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	oldStatus := quote.Status
	quote.Status = status
	if err := s.quotes.Update(ctx, quote); err != nil {
		return nil, apperrors.MapError(err)
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventQuoteStatusChanged,
		EntityID: quote.ID,
		ActorID:  actorID,
		Payload:  events.QuoteStatusChangedPayload{OldStatus: oldStatus, NewStatus: status},
	})
	return quote, nil
}

// ConvertToProject creates a project from the quote, then approves the quote
// and stamps metadata.project_id. The two writes are sequential and not
// transactional: if the quote update fails after the project insert, the
// orphan project stays and must be reconciled by an operator. The budget is
// the paise estimate converted to rupees.
func (s *QuoteService) ConvertToProject(ctx context.Context, actorID, quoteID string) (*domain.Project, *domain.Quote, error) {
	quote, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}

	project := &domain.Project{
		ClientID:    quote.ClientID,
		Name:        projectNameFromQuote(quote),
		Description: quote.Description,
		Budget:      quote.BudgetRupees(),
		Status:      domain.ProjectStatusDiscovery,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, nil, apperrors.MapError(err)
	}

	quote.Status = domain.QuoteStatusApproved
	if quote.Metadata == nil {
		quote.Metadata = map[string]any{}
	}
	quote.Metadata["project_id"] = project.ID
	if err := s.quotes.Update(ctx, quote); err != nil {
		s.logger.Error("quote update failed after project creation; orphan project left for reconciliation",
			zap.String("quote_id", quote.ID),
			zap.String("project_id", project.ID),
			zap.Error(err))
		return nil, nil, apperrors.MapError(fmt.Errorf("convert quote %s: %w", quote.ID, err))
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventQuoteConverted,
		EntityID: quote.ID,
		ActorID:  actorID,
		Payload: events.QuoteConvertedPayload{
			ProjectID:    project.ID,
			ClientID:     quote.ClientID,
			BudgetRupees: project.Budget,
		},
	})
	return project, quote, nil
}

func projectNameFromQuote(quote *domain.Quote) string {
	name := strings.TrimSpace(quote.Title)
	if name == "" {
		name = "Project from quote " + quote.ID
	}
	return name
}
