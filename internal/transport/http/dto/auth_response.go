package dto

import "github.com/quickdeliver/backend/internal/domain"

// UserView is the standard user payload in responses. The password and
// OTP hashes never leave the service.
type UserView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
	Phone    string `json:"phone,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

func ToUserView(u domain.User) UserView {
	return UserView{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Verified: u.Verified,
		Phone:    u.Phone,
		Avatar:   u.Avatar,
	}
}

func ToUserViews(users []domain.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserView(u))
	}
	return out
}

// TokensView is the standard access token payload.
type TokensView struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // "Bearer"
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

type RegisterResponse struct {
	User UserView `json:"user"`
}

// AuthData is returned by verify and login.
type AuthData struct {
	User   UserView   `json:"user"`
	Tokens TokensView `json:"tokens"`
}

type SendOTPResponse struct {
	Status string `json:"status"` // "sent"
}

type ProfileResponse struct {
	User UserView `json:"user"`
}

type StatusResponse struct {
	Status string `json:"status"` // "ok"
}
