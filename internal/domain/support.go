package domain

import "time"

// SupportSubmission is a donation/support form entry.
type SupportSubmission struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Amount    string
	Message   string
	CreatedAt time.Time
}
