package constants

import "fmt"

const (
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"

	// role default saat register dari form
	DefaultRegisterRole = RoleTeacher
)

// Template pesan error role
const ErrUnknownRole = "role %q is not recognised, use teacher or admin"

var AllRoles = []string{
	RoleTeacher,
	RoleAdmin,
}

func RoleError(role string) string {
	return fmt.Sprintf(ErrUnknownRole, role)
}

func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
