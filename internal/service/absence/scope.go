package absence

import (
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
)

// ownerFilter restricts reads to the actor's own requests.
func ownerFilter(sc user.Scope) (absence.RequestFilter, error) {
	if !sc.HasEmployee() {
		return absence.RequestFilter{}, absence.ErrEmployeeRequired
	}
	employeeID := sc.EmployeeID
	return absence.RequestFilter{TenantID: sc.TenantID, EmployeeID: &employeeID}, nil
}

// approverFilter is the visibility of an actor allowed to decide: managers
// see direct reports, HR sees the whole tenant.
func approverFilter(sc user.Scope) (absence.RequestFilter, error) {
	filter := absence.RequestFilter{TenantID: sc.TenantID}
	switch sc.Role {
	case user.RoleManager:
		if !sc.HasEmployee() {
			return absence.RequestFilter{}, absence.ErrEmployeeRequired
		}
		managerID := sc.EmployeeID
		filter.ManagerID = &managerID
	case user.RoleHR:
	default:
		return absence.RequestFilter{}, absence.ErrApproverRoleRequired
	}
	return filter, nil
}

// reviewerFilter extends approverFilter with read-only tenant access for auditors.
func reviewerFilter(sc user.Scope) (absence.RequestFilter, error) {
	if sc.Role == user.RoleAuditor {
		return absence.RequestFilter{TenantID: sc.TenantID}, nil
	}
	return approverFilter(sc)
}

func statusPtr(s absence.Status) *absence.Status {
	return &s
}
