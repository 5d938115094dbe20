package entity

// Role IDs carried in access tokens issued by the identity provider
const (
	RoleIDAdmin   = 1
	RoleIDDoctor  = 2
	RoleIDPatient = 3
)

// RoleName returns the display name of a role ID
func RoleName(roleID int) string {
	switch roleID {
	case RoleIDAdmin:
		return "admin"
	case RoleIDDoctor:
		return "doctor"
	case RoleIDPatient:
		return "patient"
	default:
		return "unknown"
	}
}
