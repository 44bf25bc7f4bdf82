package mail

import (
	"context"
	"time"
)

// Mailer renders domain messages and hands them to a Provider. It
// implements the mailer ports of the application services.
type Mailer struct {
	provider Provider
	adminTo  string
}

func NewMailer(provider Provider, adminTo string) *Mailer {
	return &Mailer{provider: provider, adminTo: adminTo}
}

func (m *Mailer) SendOTP(ctx context.Context, to, name, code string, window time.Duration) error {
	body, err := RenderOTPTemplate(name, code, window)
	if err != nil {
		return err
	}
	return m.provider.SendEmail(ctx, &Email{
		To:      to,
		Subject: "Your QuickDeliver verification code",
		Body:    body,
	})
}

func (m *Mailer) SendBookingConfirmation(ctx context.Context, to, name, service, trackingID string) error {
	body, err := RenderBookingConfirmationTemplate(name, service, trackingID)
	if err != nil {
		return err
	}
	return m.provider.SendEmail(ctx, &Email{
		To:      to,
		Subject: "Your QuickDeliver booking is confirmed",
		Body:    body,
	})
}

func (m *Mailer) SendSupportAck(ctx context.Context, to, name, amount string) error {
	body, err := RenderSupportAckTemplate(name, amount)
	if err != nil {
		return err
	}
	return m.provider.SendEmail(ctx, &Email{
		To:      to,
		Subject: "Thank you for supporting QuickDeliver",
		Body:    body,
	})
}

func (m *Mailer) SendSupportNotification(ctx context.Context, name, email, phone, amount, message string) error {
	if m.adminTo == "" {
		return nil
	}
	body, err := RenderSupportNotifyTemplate(name, email, phone, amount, message)
	if err != nil {
		return err
	}
	return m.provider.SendEmail(ctx, &Email{
		To:      m.adminTo,
		Subject: "New support submission",
		Body:    body,
	})
}
