package service

import (
	"context"

	"github.com/pixelcraft/agency-backoffice/internal/cache"
	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/events"
	"github.com/pixelcraft/agency-backoffice/internal/repository"
	apperrors "github.com/pixelcraft/agency-backoffice/pkg/util"
)

// ContentService manages the public content collections and their publish
// flags.
type ContentService struct {
	content    repository.ContentRepository
	cache      *cache.ContentCache
	dispatcher events.Dispatcher
}

// NewContentService constructs the service.
func NewContentService(content repository.ContentRepository, contentCache *cache.ContentCache, dispatcher events.Dispatcher) *ContentService {
	return &ContentService{content: content, cache: contentCache, dispatcher: dispatcher}
}

// ListPublished returns the published rows of a collection, cache-first.
func (s *ContentService) ListPublished(ctx context.Context, kind domain.ContentKind) ([]domain.ContentItem, error) {
	if !domain.ValidContentKind(kind) {
		return nil, apperrors.NewValidationError("unknown content kind", map[string]any{"kind": kind})
	}
	if items, ok := s.cache.Get(ctx, kind); ok {
		return items, nil
	}
	items, err := s.content.ListByKind(ctx, kind, true)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Set(ctx, kind, items)
	return items, nil
}

// ListAll returns every row of a collection, drafts included, for the
// back-office content pages.
func (s *ContentService) ListAll(ctx context.Context, kind domain.ContentKind) ([]domain.ContentItem, error) {
	if !domain.ValidContentKind(kind) {
		return nil, apperrors.NewValidationError("unknown content kind", map[string]any{"kind": kind})
	}
	items, err := s.content.ListByKind(ctx, kind, false)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return items, nil
}

// TogglePublish flips the publish flag and returns the item in its new
// state. A never-set flag counts as unpublished, so the first flip of a
// legacy row publishes it.
func (s *ContentService) TogglePublish(ctx context.Context, actorID string, kind domain.ContentKind, id string) (*domain.ContentItem, error) {
	if !domain.ValidContentKind(kind) {
		return nil, apperrors.NewValidationError("unknown content kind", map[string]any{"kind": kind})
	}
	item, err := s.content.GetByID(ctx, kind, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	next := !item.IsPublished()
	if err := s.content.SetPublished(ctx, kind, id, next); err != nil {
		return nil, apperrors.MapError(err)
	}
	item.Published = &next
	s.cache.Invalidate(ctx, kind)
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventContentPublishFlip,
		EntityID: item.ID,
		ActorID:  actorID,
		Payload:  events.ContentPublishFlipPayload{Kind: kind, Published: next},
	})
	return item, nil
}
