package vacation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/validator"
)

var _ vacation.Service = (*BalanceService)(nil)

type BalanceService struct {
	balances  vacation.BalanceRepository
	employees employee.EmployeeRepository
}

func NewBalanceService(balances vacation.BalanceRepository, employees employee.EmployeeRepository) *BalanceService {
	return &BalanceService{
		balances:  balances,
		employees: employees,
	}
}

// Create opens a balance period for an employee of the tenant. Duplicate
// periods are rejected by the storage constraint.
func (s *BalanceService) Create(ctx context.Context, sc user.Scope, req vacation.CreateBalanceRequest) (vacation.Balance, error) {
	if err := req.Validate(); err != nil {
		return vacation.Balance{}, err
	}

	if _, err := s.employees.GetByID(ctx, sc.TenantID, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return vacation.Balance{}, validator.Field("empleado_id", "employee does not belong to this tenant")
		}
		return vacation.Balance{}, fmt.Errorf("failed to get employee: %w", err)
	}

	created, err := s.balances.Create(ctx, vacation.NewBalance(sc.TenantID, req.EmployeeID, strings.TrimSpace(req.Period), req.DaysAssigned))
	if err != nil {
		return vacation.Balance{}, fmt.Errorf("failed to create vacation balance: %w", err)
	}

	slog.Info("vacation balance created",
		"balance_id", created.ID,
		"tenant_id", sc.TenantID,
		"employee_id", created.EmployeeID,
		"period", created.Period,
	)
	return created, nil
}

func (s *BalanceService) List(ctx context.Context, sc user.Scope) ([]vacation.Balance, error) {
	return s.balances.List(ctx, sc.TenantID, vacation.OrderNewest)
}

func (s *BalanceService) ListForAudit(ctx context.Context, sc user.Scope) ([]vacation.Balance, error) {
	return s.balances.List(ctx, sc.TenantID, vacation.OrderPeriodThenName)
}

// RenamePeriod changes only the period label; day counts are untouched.
func (s *BalanceService) RenamePeriod(ctx context.Context, sc user.Scope, id int64, req vacation.RenamePeriodRequest) (vacation.Balance, error) {
	if err := req.Validate(); err != nil {
		return vacation.Balance{}, err
	}

	updated, err := s.balances.UpdatePeriod(ctx, sc.TenantID, id, strings.TrimSpace(req.Period))
	if err != nil {
		return vacation.Balance{}, fmt.Errorf("failed to rename vacation balance period: %w", err)
	}
	return updated, nil
}

func (s *BalanceService) Delete(ctx context.Context, sc user.Scope, id int64) error {
	if err := s.balances.Delete(ctx, sc.TenantID, id); err != nil {
		return fmt.Errorf("failed to delete vacation balance: %w", err)
	}
	return nil
}

// ListEmployees lists the tenant employees a balance can be opened for.
func (s *BalanceService) ListEmployees(ctx context.Context, sc user.Scope) ([]employee.Employee, error) {
	return s.employees.ListByTenant(ctx, sc.TenantID)
}
