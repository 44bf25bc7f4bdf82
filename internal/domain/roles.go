package domain

type Role string

const (
	// User can register, verify via OTP, and manage their own profile.
	RoleUser Role = "user"
	// Admin manages users and delivery records; admins log in with
	// password only and skip the OTP flow entirely.
	RoleAdmin Role = "admin"
)

func IsValidRole(r string) bool {
	return r == string(RoleUser) || r == string(RoleAdmin)
}

// RoleRank: bigger => higher privilege
func RoleRank(r string) int {
	switch r {
	case string(RoleUser):
		return 1
	case string(RoleAdmin):
		return 2
	default:
		return 0
	}
}
