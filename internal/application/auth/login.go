package auth

import (
	"context"
	"strings"

	"github.com/quickdeliver/backend/internal/domain"
)

// Login authenticates with email + password and issues a session token.
// Unknown emails report user_not_found; a non-admin account must have
// completed OTP verification first. Admins skip the verified check.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)

	if email == "" {
		return LoginResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return LoginResult{}, domain.ErrMissingField("password")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	if u.Role != string(domain.RoleAdmin) && !u.Verified {
		return LoginResult{}, domain.ErrAccountNotVerified()
	}

	toks, err := s.issueTokens(u)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{User: u, Tokens: toks}, nil
}
