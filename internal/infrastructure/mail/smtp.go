package mail

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPConfig holds the SMTP provider settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// SMTPProvider implements email sending via SMTP
type SMTPProvider struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
}

func NewSMTPProvider(cfg SMTPConfig) (*SMTPProvider, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP_HOST is required")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("SMTP_USERNAME and SMTP_PASSWORD are required")
	}

	return &SMTPProvider{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		fromName: cfg.FromName,
	}, nil
}

func (p *SMTPProvider) SendEmail(ctx context.Context, email *Email) error {
	addr := fmt.Sprintf("%s:%d", p.host, p.port)
	auth := smtp.PlainAuth("", p.username, p.password, p.host)

	fromHeader := fmt.Sprintf("%s <%s>", p.fromName, p.from)
	to := []string{email.To}

	msg := []byte(fmt.Sprintf("From: %s\r\n", fromHeader) +
		fmt.Sprintf("To: %s\r\n", email.To) +
		fmt.Sprintf("Subject: %s\r\n", email.Subject) +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		email.Body + "\r\n")

	if err := smtp.SendMail(addr, auth, p.from, to, msg); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}

func (p *SMTPProvider) Name() string {
	return "smtp"
}
