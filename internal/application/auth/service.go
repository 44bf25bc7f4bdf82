package auth

import (
	"time"

	"github.com/quickdeliver/backend/internal/domain"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	otp    OTPGenerator
	signer TokenSigner
	mailer OTPMailer

	accessTTL time.Duration
	otpWindow time.Duration
	now       Clock
}

type Config struct {
	AccessTTL time.Duration
	OTPWindow time.Duration
}

func NewService(
	users UserRepo,
	hasher PasswordHasher,
	otp OTPGenerator,
	signer TokenSigner,
	mailer OTPMailer,
	cfg Config,
) *Service {
	accessTTL := cfg.AccessTTL
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	otpWindow := cfg.OTPWindow
	if otpWindow <= 0 {
		otpWindow = 10 * time.Minute
	}
	return &Service{
		users:  users,
		hasher: hasher,
		otp:    otp,
		signer: signer,
		mailer: mailer,

		accessTTL: accessTTL,
		otpWindow: otpWindow,
		now:       time.Now,
	}
}

// WithClock replaces the time source; tests use it to cross the OTP window.
func (s *Service) WithClock(now Clock) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// AuthTokens is the common token output for handlers/DTO mapping.
type AuthTokens struct {
	AccessToken string
	ExpiresIn   int64  // seconds
	TokenType   string // "Bearer"
}

type LoginResult struct {
	User   domain.User
	Tokens AuthTokens
}

// issueTokens mints the signed session token for a user. Validity is
// signature + expiry only; there is no server-side session record.
func (s *Service) issueTokens(u domain.User) (AuthTokens, error) {
	access, err := s.signer.SignAccessToken(TokenClaims{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
	}, s.accessTTL)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}
