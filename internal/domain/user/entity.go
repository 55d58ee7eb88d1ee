package user

type Role string

const (
	RoleSuperAdmin Role = "superadmin" // Platform operator, no employee record required
	RoleHR         Role = "rrhh"       // Tenant HR, decides any request in the tenant
	RoleManager    Role = "manager"    // Decides requests of direct reports
	RoleEmployee   Role = "empleado"   // Self-service only
	RoleAuditor    Role = "auditor"    // Read-only views
)

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleHR, RoleManager, RoleEmployee, RoleAuditor:
		return true
	}
	return false
}

// RequiresEmployee reports whether actors of this role must be bound to an
// employee record.
func (r Role) RequiresEmployee() bool {
	return r != RoleSuperAdmin
}
