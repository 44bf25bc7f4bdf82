package dto

import (
	"testing"

	"github.com/quickdeliver/backend/internal/domain"
)

func TestRegisterRequest_Validate(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		r := &RegisterRequest{Email: "a@b.com", Password: "longenough"}
		if err := r.Validate(); !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(name), got: %v", err)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		r := &RegisterRequest{Name: "Jane", Password: "longenough"}
		if err := r.Validate(); !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(email), got: %v", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		r := &RegisterRequest{Name: "Jane", Email: "a@b.com", Password: "short"}
		if err := r.Validate(); !domain.Is(err, "weak_password") {
			t.Fatalf("expected weak_password, got: %v", err)
		}
	})

	t.Run("invalid email format (no @)", func(t *testing.T) {
		r := &RegisterRequest{Name: "Jane", Email: "abc", Password: "longenough"}
		if err := r.Validate(); !domain.Is(err, "invalid_field") {
			t.Fatalf("expected invalid_field(email), got: %v", err)
		}
	})

	t.Run("normalizes email", func(t *testing.T) {
		r := &RegisterRequest{Name: "Jane", Email: "  A@B.com ", Password: "longenough"}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected nil, got: %v", err)
		}
		if r.Email != "a@b.com" {
			t.Fatalf("email not normalized: %q", r.Email)
		}
	})
}

func TestVerifyOTPRequest_Validate(t *testing.T) {
	t.Run("missing otp", func(t *testing.T) {
		r := &VerifyOTPRequest{Email: "a@b.com"}
		if err := r.Validate(); !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(otp), got: %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		r := &VerifyOTPRequest{Email: "a@b.com", OTP: " 123456 "}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected nil, got: %v", err)
		}
		if r.OTP != "123456" {
			t.Fatalf("otp not trimmed: %q", r.OTP)
		}
	})
}

func TestSetUserRoleRequest_Validate(t *testing.T) {
	t.Run("invalid role", func(t *testing.T) {
		r := &SetUserRoleRequest{Role: "superadmin"}
		if err := r.Validate(); !domain.Is(err, "invalid_role") {
			t.Fatalf("expected invalid_role, got: %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		r := &SetUserRoleRequest{Role: string(domain.RoleAdmin)}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected nil, got: %v", err)
		}
	})
}

func TestCreateDeliveryRequest_Validate(t *testing.T) {
	t.Run("missing item", func(t *testing.T) {
		r := &CreateDeliveryRequest{CustomerName: "J", Address: "1", Date: "2025-03-01"}
		if err := r.Validate(); !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(item), got: %v", err)
		}
	})

	t.Run("bad status", func(t *testing.T) {
		r := &CreateDeliveryRequest{Item: "A", CustomerName: "J", Address: "1", Date: "2025-03-01", Status: "teleported"}
		if err := r.Validate(); !domain.Is(err, "invalid_field") {
			t.Fatalf("expected invalid_field(status), got: %v", err)
		}
	})

	t.Run("ok without status", func(t *testing.T) {
		r := &CreateDeliveryRequest{Item: "A", CustomerName: "J", Address: "1", Date: "2025-03-01"}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected nil, got: %v", err)
		}
	})
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	t.Run("bad email", func(t *testing.T) {
		r := &CreateBookingRequest{Service: "Express", CustomerName: "J", Email: "not-an-email"}
		if err := r.Validate(); !domain.Is(err, "invalid_field") {
			t.Fatalf("expected invalid_field(email), got: %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		r := &CreateBookingRequest{Service: "Express", CustomerName: "J", Email: "J@Example.com"}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected nil, got: %v", err)
		}
		if r.Email != "j@example.com" {
			t.Fatalf("email not normalized: %q", r.Email)
		}
	})
}

func TestSupportRequest_Validate(t *testing.T) {
	t.Run("missing amount", func(t *testing.T) {
		r := &SupportRequest{Name: "Amy", Email: "amy@example.com"}
		if err := r.Validate(); !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(amount), got: %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		r := &SupportRequest{Name: "Amy", Email: "amy@example.com", Amount: "50"}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected nil, got: %v", err)
		}
	})
}
