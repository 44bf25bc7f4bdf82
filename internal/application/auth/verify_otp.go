package auth

import (
	"context"
	"strings"

	"github.com/quickdeliver/backend/internal/domain"
)

// VerifyOTP checks a submitted code and, on success, marks the account
// verified and issues a session token.
//
// The check order is fixed: unknown user, admin bypass, no pending code,
// expiry, then hash comparison. Expiry strictly precedes the comparison so
// an expired-but-correct code reports otp_expired, never otp_mismatch.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return LoginResult{}, domain.ErrMissingField("email")
	}
	if code == "" {
		return LoginResult{}, domain.ErrMissingField("otp")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}

	if u.Role == string(domain.RoleAdmin) {
		return LoginResult{}, domain.ErrOTPNotApplicable()
	}

	if !u.OTPPending() {
		return LoginResult{}, domain.ErrOTPNotPending()
	}

	if s.now().After(*u.OTPExpiresAt) {
		return LoginResult{}, domain.ErrOTPExpired()
	}

	if err := s.hasher.Compare(u.OTPHash, code); err != nil {
		return LoginResult{}, domain.ErrOTPMismatch()
	}

	// Conditional clear: only succeeds while the stored hash is still the
	// one we compared against, so a racing verification consumes the code
	// exactly once.
	if err := s.users.ClearOTPAndVerify(ctx, u.Email, u.OTPHash); err != nil {
		return LoginResult{}, err
	}

	u.OTPHash = ""
	u.OTPExpiresAt = nil
	u.Verified = true

	toks, err := s.issueTokens(u)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{User: u, Tokens: toks}, nil
}
