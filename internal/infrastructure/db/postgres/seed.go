package postgres

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/quickdeliver/backend/internal/domain"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

// SeedAdmin inserts the bootstrap admin account. Admins skip the OTP
// flow, so the row is created verified. Restart safe: duplicates are
// ignored.
func SeedAdmin(ctx context.Context, repo SeederRepo, hasher SeederHasher, email, password string) {
	if email == "" || password == "" {
		return
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		log.Printf("[seed] hash failed (%s): %v", email, err)
		return
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Name:         "Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         string(domain.RoleAdmin),
		Verified:     true,
	}

	if _, err := repo.Create(ctx, u); err != nil {
		// already present
		return
	}

	log.Printf("[seed] admin account seeded (%s)", email)
}
