package domain

import "time"

// QuoteStatus enumerates quote outcomes.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Quote is a priced proposal for a client. EstimatedCost is stored in paise.
type Quote struct {
	ID            string
	ClientID      *string
	Title         string
	Description   string
	EstimatedCost int64
	Status        QuoteStatus
	Metadata      map[string]any
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BudgetRupees converts the paise estimate into the rupee amount a project
// created from this quote is budgeted at.
func (q *Quote) BudgetRupees() float64 {
	return float64(q.EstimatedCost) / 100
}

// ValidQuoteStatus reports membership in the status enum.
func ValidQuoteStatus(status QuoteStatus) bool {
	switch status {
	case QuoteStatusPending, QuoteStatusApproved, QuoteStatusRejected:
		return true
	}
	return false
}
