package auth

import (
	"context"
	"strings"

	"github.com/quickdeliver/backend/internal/domain"
)

// ListUsers returns all accounts for the admin panel.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// SetUserRole updates a user's role. An admin cannot demote themselves.
func (s *Service) SetUserRole(ctx context.Context, actorID, targetID, role string) error {
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return domain.ErrMissingField("id")
	}
	if !domain.IsValidRole(role) {
		return domain.ErrInvalidRole(role)
	}
	if actorID == targetID {
		return domain.ErrCannotAffectSelf()
	}
	return s.users.SetRole(ctx, targetID, role)
}

// DeleteUser removes an account. An admin cannot delete themselves.
func (s *Service) DeleteUser(ctx context.Context, actorID, targetID string) error {
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return domain.ErrMissingField("id")
	}
	if actorID == targetID {
		return domain.ErrCannotAffectSelf()
	}
	return s.users.Delete(ctx, targetID)
}
