package auth

import (
	"context"
	"strings"

	"github.com/quickdeliver/backend/internal/domain"
)

// SendOTP issues a fresh one-time code for the account and hands the
// plaintext to the mail collaborator. The hash and expiry are persisted
// before the send; if the send fails the row stays set and the failure
// surfaces as mail_delivery_failed.
func (s *Service) SendOTP(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.ErrMissingField("email")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	// Admins never hold OTP state.
	if u.Role == string(domain.RoleAdmin) {
		return domain.ErrOTPNotApplicable()
	}

	code, err := s.otp.Generate()
	if err != nil {
		return domain.ErrRandomFailed(err)
	}

	hash, err := s.hasher.Hash(code)
	if err != nil {
		return domain.ErrHashFailed(err)
	}

	expiresAt := s.now().Add(s.otpWindow)
	if err := s.users.SetOTP(ctx, u.Email, hash, expiresAt); err != nil {
		return err
	}

	if err := s.mailer.SendOTP(ctx, u.Email, u.Name, code, s.otpWindow); err != nil {
		return domain.ErrMailDeliveryFailed(err)
	}

	return nil
}
