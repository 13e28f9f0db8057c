package dto

import (
	"time"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

// ContentItemResponse is one row of a content collection. Published is
// normalized to a plain boolean at this boundary.
type ContentItemResponse struct {
	ID        string             `json:"id"`
	Kind      domain.ContentKind `json:"kind"`
	Title     string             `json:"title"`
	Slug      string             `json:"slug"`
	Body      string             `json:"body"`
	Published bool               `json:"published"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
