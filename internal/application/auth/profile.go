package auth

import (
	"context"
	"strings"

	"github.com/quickdeliver/backend/internal/domain"
)

func (s *Service) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}
	return s.users.GetByID(ctx, id)
}

// UpdateProfile changes display name and/or phone; empty fields are left
// untouched by the repo.
func (s *Service) UpdateProfile(ctx context.Context, userID, name, phone string) (domain.User, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" && phone == "" {
		return domain.User{}, domain.ErrInvalidField("profile", "nothing to update")
	}
	return s.users.UpdateProfile(ctx, userID, name, phone)
}

func (s *Service) ClearAvatar(ctx context.Context, userID string) error {
	return s.users.ClearAvatar(ctx, userID)
}
