package mail

import "context"

// Email is a rendered message ready for a provider.
type Email struct {
	To      string
	Subject string
	Body    string // html
}

// Provider defines the interface for email sending providers
type Provider interface {
	SendEmail(ctx context.Context, email *Email) error
	Name() string
}
