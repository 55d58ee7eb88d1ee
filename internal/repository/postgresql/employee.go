package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, tenantID, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, manager_id, first_name, last_name, email
		FROM employees
		WHERE id = $1 AND tenant_id = $2
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&e.ID,
		&e.TenantID,
		&e.ManagerID,
		&e.FirstName,
		&e.LastName,
		&e.Email,
	)
	if err != nil {
		if isNoRows(err) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// ListByTenant implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByTenant(ctx context.Context, tenantID int64) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, manager_id, first_name, last_name, email
		FROM employees
		WHERE tenant_id = $1
		ORDER BY last_name, first_name, id
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.TenantID, &e.ManagerID, &e.FirstName, &e.LastName, &e.Email); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
