package domain

import "time"

// User is an account row. OTPHash and OTPExpiresAt are both set or both
// empty; admin rows never carry OTP state.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string

	OTPHash      string
	OTPExpiresAt *time.Time
	Verified     bool

	Phone     string
	Avatar    string
	CreatedAt time.Time
}

// OTPPending reports whether an issued code is waiting to be verified.
func (u User) OTPPending() bool {
	return u.OTPHash != "" && u.OTPExpiresAt != nil
}
