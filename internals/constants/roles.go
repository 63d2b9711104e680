package constants

import "fmt"

const (
	RoleAdmin     = "admin"
	RolePrincipal = "principal"
	RoleTeacher   = "teacher"
	RoleStudent   = "student"
)

// Role error message templates
const (
	ErrOnlyStaffCanAccess      = "❌ Only teacher, principal, or admin may access the %s feature."
	ErrOnlyAdminsCanAccess     = "❌ Only admin may access the %s feature."
	ErrOnlyManagementCanAccess = "❌ Only admin or principal may access the %s feature."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorManagement(feature string) string {
	return fmt.Sprintf(ErrOnlyManagementCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RolePrincipal,
		RoleTeacher,
		RoleStudent,
	}

	StaffRoles = []string{
		RoleAdmin,
		RolePrincipal,
		RoleTeacher,
	}

	ManagementRoles = []string{
		RoleAdmin,
		RolePrincipal,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// IsStaff reports whether role is any non-student role.
func IsStaff(role string) bool {
	return role == RoleAdmin || role == RolePrincipal || role == RoleTeacher
}
