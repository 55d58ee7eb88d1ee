package user

type Permission string

const (
	// Self service
	PermissionAbsenceSelf      Permission = "absence:self"
	PermissionNotificationRead Permission = "notification:read"

	// Approvals
	PermissionAbsenceDecideTeam   Permission = "absence:decide:team"
	PermissionAbsenceDecideTenant Permission = "absence:decide:tenant"

	// HR administration
	PermissionAbsenceTypeManage Permission = "absence_type:manage"
	PermissionVacationManage    Permission = "vacation:manage"

	// Audit
	PermissionAuditRead Permission = "audit:read"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleHR: {
		PermissionAbsenceSelf,
		PermissionNotificationRead,
		PermissionAbsenceDecideTenant,
		PermissionAbsenceTypeManage,
		PermissionVacationManage,
	},
	RoleManager: {
		PermissionAbsenceSelf,
		PermissionNotificationRead,
		PermissionAbsenceDecideTeam,
	},
	RoleEmployee: {
		PermissionAbsenceSelf,
		PermissionNotificationRead,
	},
	RoleAuditor: {
		PermissionNotificationRead,
		PermissionAuditRead,
	},
	RoleSuperAdmin: {},
}

func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
