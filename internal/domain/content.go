package domain

import "time"

// ContentKind names one public-facing content collection. Values double as
// table names, so repositories must validate them before interpolation.
type ContentKind string

const (
	ContentBlogPosts      ContentKind = "blog_posts"
	ContentPortfolioItems ContentKind = "portfolio_items"
	ContentCaseStudies    ContentKind = "case_studies"
	ContentTestimonials   ContentKind = "testimonials"
	ContentPricingPlans   ContentKind = "pricing_plans"
	ContentServices       ContentKind = "services"
)

// ContentKinds lists every collection, in the order public pages show them.
var ContentKinds = []ContentKind{
	ContentBlogPosts,
	ContentPortfolioItems,
	ContentCaseStudies,
	ContentTestimonials,
	ContentPricingPlans,
	ContentServices,
}

// ValidContentKind reports membership in the kind enum.
func ValidContentKind(kind ContentKind) bool {
	for _, candidate := range ContentKinds {
		if candidate == kind {
			return true
		}
	}
	return false
}

// ContentItem is one row of a content collection. Published is a pointer
// because legacy rows predate the flag; nil reads as unpublished.
type ContentItem struct {
	ID        string
	Kind      ContentKind
	Title     string
	Slug      string
	Body      string
	Published *bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPublished normalizes the three-state flag: only an explicit true counts.
func (c *ContentItem) IsPublished() bool {
	return c.Published != nil && *c.Published
}
