package constants

// Delegable capability names. The permission store only ever persists
// keys from this list; unknown keys are rejected at validation time.
const (
	CapManageStudents      = "manage_students"
	CapManageAttendance    = "manage_attendance"
	CapManageFees          = "manage_fees"
	CapManageAssignments   = "manage_assignments"
	CapManageNotifications = "manage_notifications"
	CapViewReports         = "view_reports"
	CapManageOnlineClasses = "manage_online_classes"
	CapDelegatePermissions = "delegate_permissions"
	CapManageRegistrations = "manage_registrations"
)

var AllCapabilities = []string{
	CapManageStudents,
	CapManageAttendance,
	CapManageFees,
	CapManageAssignments,
	CapManageNotifications,
	CapViewReports,
	CapManageOnlineClasses,
	CapDelegatePermissions,
	CapManageRegistrations,
}

// IsKnownCapability reports whether name is in the fixed capability set.
func IsKnownCapability(name string) bool {
	for _, c := range AllCapabilities {
		if c == name {
			return true
		}
	}
	return false
}
