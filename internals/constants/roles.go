package constants

import "fmt"

// Role dari identity provider (JWT claim "role").
const (
	RoleAdmin   = "admin"
	RoleTeacher = "guru"
	RoleStudent = "siswa"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess  = "❌ Hanya guru atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleTeacher,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
