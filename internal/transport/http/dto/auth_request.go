package dto

import (
	"strings"

	"github.com/quickdeliver/backend/internal/domain"
)

// -------- Core auth --------

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))

	if r.Name == "" {
		return domain.ErrMissingField("name")
	}
	if r.Email == "" {
		return domain.ErrMissingField("email")
	}
	if !strings.Contains(r.Email, "@") {
		return domain.ErrInvalidField("email", "invalid format")
	}
	if r.Password == "" {
		return domain.ErrMissingField("password")
	}
	if len(r.Password) < 8 {
		return domain.ErrWeakPassword("min length 8")
	}
	return nil
}

type SendOTPRequest struct {
	Email string `json:"email"`
}

func (r *SendOTPRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Email == "" {
		return domain.ErrMissingField("email")
	}
	if !strings.Contains(r.Email, "@") {
		return domain.ErrInvalidField("email", "invalid format")
	}
	return nil
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (r *VerifyOTPRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.OTP = strings.TrimSpace(r.OTP)

	if r.Email == "" {
		return domain.ErrMissingField("email")
	}
	if r.OTP == "" {
		return domain.ErrMissingField("otp")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Email == "" {
		return domain.ErrMissingField("email")
	}
	if r.Password == "" {
		return domain.ErrMissingField("password")
	}
	return nil
}

// -------- Admin / profile --------

type SetUserRoleRequest struct {
	Role string `json:"role"`
}

func (r *SetUserRoleRequest) Validate() error {
	if r.Role == "" {
		return domain.ErrMissingField("role")
	}
	if !domain.IsValidRole(r.Role) {
		return domain.ErrInvalidRole(r.Role)
	}
	return nil
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (r *UpdateProfileRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Name == "" && r.Phone == "" {
		return domain.ErrInvalidField("profile", "nothing to update")
	}
	return nil
}
