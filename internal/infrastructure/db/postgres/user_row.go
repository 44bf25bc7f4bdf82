package postgres

import "time"

type userRow struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	OTPHash      *string
	OTPExpiresAt *time.Time
	Verified     bool
	Phone        *string
	Avatar       *string
	CreatedAt    time.Time
}
