package auth

import (
	"context"
	"time"

	"github.com/quickdeliver/backend/internal/domain"
)

/*
UserRepo
--------
Persistence port for accounts. Only describes WHAT the auth flows need,
not HOW it's stored. All writes are immediately durable.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)

	// OTP state. SetOTP overwrites any prior code. ClearOTPAndVerify
	// clears hash+expiry and sets verified, but only while the stored
	// hash still equals expectedHash; a raced-away clear reports
	// ErrOTPNotPending.
	SetOTP(ctx context.Context, email, otpHash string, expiresAt time.Time) error
	ClearOTPAndVerify(ctx context.Context, email, expectedHash string) error

	SetRole(ctx context.Context, userID string, role string) error
	Delete(ctx context.Context, userID string) error

	UpdateProfile(ctx context.Context, userID, name, phone string) (domain.User, error)
	ClearAvatar(ctx context.Context, userID string) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt. The same slow hash covers passwords and OTP codes.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
OTPGenerator
------------
Produces fixed-length numeric codes from a uniform random source.
*/
type OTPGenerator interface {
	Generate() (string, error)
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by service + auth middleware.
*/
type TokenClaims struct {
	UserID string
	Email  string
	Name   string
	Role   string
	Exp    time.Time
}

type TokenSigner interface {
	SignAccessToken(c TokenClaims, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}

/*
OTPMailer
---------
The email collaborator. A failed send surfaces to the caller; the stored
OTP row is deliberately left in place.
*/
type OTPMailer interface {
	SendOTP(ctx context.Context, to, name, code string, window time.Duration) error
}

// Clock lets tests pin "now" for the expiry checks.
type Clock func() time.Time
