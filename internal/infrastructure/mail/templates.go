package mail

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

func render(name, tmpl string, data any) (string, error) {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}
	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// RenderOTPTemplate renders the verification-code email.
func RenderOTPTemplate(name, code string, window time.Duration) (string, error) {
	tmpl := `<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Your Verification Code</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #4CAF50;">Verify Your Email Address</h1>
		<p>Hello {{.Name}},</p>
		<p>Use the code below to verify your QuickDeliver account:</p>
		<div style="text-align: center; margin: 30px 0;">
			<span style="font-size: 32px; letter-spacing: 8px; font-weight: bold;">{{.Code}}</span>
		</div>
		<p>This code will expire in {{.Minutes}} minutes.</p>
		<p>If you didn't create an account, please ignore this email.</p>
		<hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
		<p style="color: #999; font-size: 12px;">This is an automated message, please do not reply.</p>
	</div>
</body>
</html>`

	data := struct {
		Name    string
		Code    string
		Minutes int
	}{
		Name:    name,
		Code:    code,
		Minutes: int(window.Minutes()),
	}
	return render("otp", tmpl, data)
}

// RenderBookingConfirmationTemplate renders the booking confirmation email.
func RenderBookingConfirmationTemplate(name, service, trackingID string) (string, error) {
	tmpl := `<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Booking Confirmed</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #4CAF50;">Booking Confirmed</h1>
		<p>Hello {{.Name}},</p>
		<p>Your booking for <strong>{{.Service}}</strong> has been received.</p>
		<p>Track your delivery any time with this tracking ID:</p>
		<div style="text-align: center; margin: 30px 0;">
			<span style="font-size: 24px; letter-spacing: 3px; font-weight: bold;">{{.TrackingID}}</span>
		</div>
		<hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
		<p style="color: #999; font-size: 12px;">This is an automated message, please do not reply.</p>
	</div>
</body>
</html>`

	data := struct {
		Name       string
		Service    string
		TrackingID string
	}{
		Name:       name,
		Service:    service,
		TrackingID: trackingID,
	}
	return render("booking_confirmation", tmpl, data)
}

// RenderSupportAckTemplate renders the thank-you email sent to a supporter.
func RenderSupportAckTemplate(name, amount string) (string, error) {
	tmpl := `<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Thank You for Your Support</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #4CAF50;">Thank You, {{.Name}}!</h1>
		<p>We received your contribution of <strong>{{.Amount}}</strong>.</p>
		<p>Your support keeps QuickDeliver moving.</p>
		<hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
		<p style="color: #999; font-size: 12px;">This is an automated message, please do not reply.</p>
	</div>
</body>
</html>`

	data := struct {
		Name   string
		Amount string
	}{Name: name, Amount: amount}
	return render("support_ack", tmpl, data)
}

// RenderSupportNotifyTemplate renders the admin notification for a new
// support submission.
func RenderSupportNotifyTemplate(name, email, phone, amount, message string) (string, error) {
	tmpl := `<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>New Support Submission</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #2196F3;">New Support Submission</h1>
		<ul>
			<li><strong>Name:</strong> {{.Name}}</li>
			<li><strong>Email:</strong> {{.Email}}</li>
			<li><strong>Phone:</strong> {{.Phone}}</li>
			<li><strong>Amount:</strong> {{.Amount}}</li>
		</ul>
		<p>{{.Message}}</p>
	</div>
</body>
</html>`

	data := struct {
		Name    string
		Email   string
		Phone   string
		Amount  string
		Message string
	}{Name: name, Email: email, Phone: phone, Amount: amount, Message: message}
	return render("support_notify", tmpl, data)
}
