package mail

import (
	"context"

	"github.com/rs/zerolog/log"
)

// LogProvider writes messages to the log instead of sending them.
// Used in dev mode when no SMTP host is configured.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) SendEmail(ctx context.Context, email *Email) error {
	log.Info().
		Str("to", email.To).
		Str("subject", email.Subject).
		Int("body_bytes", len(email.Body)).
		Msg("email (log provider, not sent)")
	return nil
}

func (p *LogProvider) Name() string {
	return "log"
}
