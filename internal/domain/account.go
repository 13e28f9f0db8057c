package domain

import "time"

// Account is the profile record behind every user, client or operator.
type Account struct {
	ID           string
	Email        string
	FullName     string
	ClientCode   string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
