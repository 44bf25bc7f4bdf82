package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quickdeliver/backend/internal/application/auth"
	"github.com/quickdeliver/backend/internal/domain"
)

func TestJWTSigner_SignAndVerify_Success(t *testing.T) {
	t.Parallel()

	s := NewJWTSigner("test-secret", "quickdeliver")
	in := auth.TokenClaims{
		UserID: "u-1",
		Email:  "jane@example.com",
		Name:   "Jane",
		Role:   string(domain.RoleUser),
	}

	tok, err := s.SignAccessToken(in, time.Hour)
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}

	out, err := s.VerifyAccessToken(tok)
	if err != nil {
		t.Fatalf("verify err: %v", err)
	}
	if out.UserID != in.UserID || out.Email != in.Email || out.Name != in.Name || out.Role != in.Role {
		t.Fatalf("claims mismatch: %+v", out)
	}
	if out.Exp.Before(time.Now().Add(55 * time.Minute)) {
		t.Fatalf("expected ~1h expiry, got %v", out.Exp)
	}
}

func TestJWTSigner_Verify_Expired_ReturnsTokenExpired(t *testing.T) {
	t.Parallel()

	s := NewJWTSigner("test-secret", "quickdeliver")
	tok, err := s.SignAccessToken(auth.TokenClaims{UserID: "u-1", Role: string(domain.RoleUser)}, -time.Minute)
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}

	_, err = s.VerifyAccessToken(tok)
	if !domain.Is(err, "token_expired") {
		t.Fatalf("expected token_expired, got %v", err)
	}
}

func TestJWTSigner_Verify_WrongSecret_ReturnsTokenInvalid(t *testing.T) {
	t.Parallel()

	a := NewJWTSigner("secret-a", "quickdeliver")
	b := NewJWTSigner("secret-b", "quickdeliver")

	tok, err := a.SignAccessToken(auth.TokenClaims{UserID: "u-1", Role: string(domain.RoleUser)}, time.Hour)
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}

	_, err = b.VerifyAccessToken(tok)
	if !domain.Is(err, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", err)
	}
}

func TestJWTSigner_Verify_Garbage_ReturnsTokenInvalid(t *testing.T) {
	t.Parallel()

	s := NewJWTSigner("test-secret", "quickdeliver")
	_, err := s.VerifyAccessToken("not.a.token")
	if !domain.Is(err, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", err)
	}
}

func TestJWTSigner_Verify_AlgConfusion_Rejected(t *testing.T) {
	t.Parallel()

	// Token signed with alg=none must never validate.
	claims := jwt.MapClaims{
		"uid":  "u-1",
		"role": string(domain.RoleUser),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}

	s := NewJWTSigner("test-secret", "quickdeliver")
	_, err = s.VerifyAccessToken(tok)
	if !domain.Is(err, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", err)
	}
}
