package employee

import "context"

type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound when the employee is not in the tenant.
	GetByID(ctx context.Context, tenantID, id int64) (Employee, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]Employee, error)
}
