package domain

import "time"

// InvoiceStatus enumerates billing states.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Invoice bills a client. Amount is stored in paise.
type Invoice struct {
	ID        string
	ClientID  *string
	Number    string
	Amount    int64
	Status    InvoiceStatus
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidInvoiceStatus reports membership in the status enum.
func ValidInvoiceStatus(status InvoiceStatus) bool {
	switch status {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid,
		InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}
