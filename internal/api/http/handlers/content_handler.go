package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pixelcraft/agency-backoffice/internal/api/dto"
	"github.com/pixelcraft/agency-backoffice/internal/auth"
	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/service"
)

// ContentHandler serves the content collections: published rows to the
// public site, full collections and publish flips to the back office.
type ContentHandler struct {
	content *service.ContentService
}

// NewContentHandler constructs handler.
func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// ListPublished GET /public/content/:kind.
func (h *ContentHandler) ListPublished(c *fiber.Ctx) error {
	kind := domain.ContentKind(c.Params("kind"))
	items, err := h.content.ListPublished(c.UserContext(), kind)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contentResponses(items)})
}

// ListAll GET /admin/content/:kind.
func (h *ContentHandler) ListAll(c *fiber.Ctx) error {
	kind := domain.ContentKind(c.Params("kind"))
	items, err := h.content.ListAll(c.UserContext(), kind)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contentResponses(items)})
}

// TogglePublish POST /admin/content/:kind/:id/publish-toggle.
func (h *ContentHandler) TogglePublish(c *fiber.Ctx) error {
	kind := domain.ContentKind(c.Params("kind"))
	identity := auth.IdentityFromContext(c)
	item, err := h.content.TogglePublish(c.UserContext(), identity.UserID, kind, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contentResponse(item)})
}

func contentResponse(item *domain.ContentItem) dto.ContentItemResponse {
	return dto.ContentItemResponse{
		ID:        item.ID,
		Kind:      item.Kind,
		Title:     item.Title,
		Slug:      item.Slug,
		Body:      item.Body,
		Published: item.IsPublished(),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func contentResponses(items []domain.ContentItem) []dto.ContentItemResponse {
	resp := make([]dto.ContentItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, contentResponse(&items[i]))
	}
	return resp
}
