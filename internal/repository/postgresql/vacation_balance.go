package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const vacationBalanceSelect = `
	SELECT vb.id, vb.tenant_id, vb.employee_id, vb.period,
		   vb.days_assigned, vb.days_used, vb.days_available,
		   e.id, e.tenant_id, e.manager_id, e.first_name, e.last_name, e.email
	FROM vacation_balances vb
	INNER JOIN employees e ON e.id = vb.employee_id
`

type vacationBalanceRepositoryImpl struct {
	db *database.DB
}

func NewVacationBalanceRepository(db *database.DB) vacation.BalanceRepository {
	return &vacationBalanceRepositoryImpl{db: db}
}

func scanBalance(row pgx.Row) (vacation.Balance, error) {
	var b vacation.Balance
	err := row.Scan(
		&b.ID, &b.TenantID, &b.EmployeeID, &b.Period,
		&b.DaysAssigned, &b.DaysUsed, &b.DaysAvailable,
		&b.Employee.ID, &b.Employee.TenantID, &b.Employee.ManagerID,
		&b.Employee.FirstName, &b.Employee.LastName, &b.Employee.Email,
	)
	return b, err
}

// Create implements vacation.BalanceRepository.
func (r *vacationBalanceRepositoryImpl) Create(ctx context.Context, b vacation.Balance) (vacation.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacation_balances (tenant_id, employee_id, period, days_assigned, days_used, days_available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query, b.TenantID, b.EmployeeID, b.Period, b.DaysAssigned, b.DaysUsed, b.DaysAvailable).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return vacation.Balance{}, vacation.ErrPeriodExists
		}
		return vacation.Balance{}, fmt.Errorf("create vacation balance: %w", err)
	}
	return r.GetByID(ctx, b.TenantID, id)
}

// GetByID implements vacation.BalanceRepository.
func (r *vacationBalanceRepositoryImpl) GetByID(ctx context.Context, tenantID, id int64) (vacation.Balance, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanBalance(q.QueryRow(ctx, vacationBalanceSelect+" WHERE vb.id = $1 AND vb.tenant_id = $2", id, tenantID))
	if err != nil {
		if isNoRows(err) {
			return vacation.Balance{}, vacation.ErrBalanceNotFound
		}
		return vacation.Balance{}, fmt.Errorf("get vacation balance: %w", err)
	}
	return b, nil
}

// List implements vacation.BalanceRepository.
func (r *vacationBalanceRepositoryImpl) List(ctx context.Context, tenantID int64, order vacation.BalanceOrder) ([]vacation.Balance, error) {
	q := GetQuerier(ctx, r.db)

	orderBy := " ORDER BY vb.id DESC"
	if order == vacation.OrderPeriodThenName {
		orderBy = " ORDER BY vb.period DESC, e.last_name, e.first_name, vb.id DESC"
	}

	rows, err := q.Query(ctx, vacationBalanceSelect+" WHERE vb.tenant_id = $1"+orderBy, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list vacation balances: %w", err)
	}
	defer rows.Close()

	balances := make([]vacation.Balance, 0)
	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vacation balance: %w", err)
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

// UpdatePeriod implements vacation.BalanceRepository.
func (r *vacationBalanceRepositoryImpl) UpdatePeriod(ctx context.Context, tenantID, id int64, period string) (vacation.Balance, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE vacation_balances SET period = $3 WHERE id = $1 AND tenant_id = $2`, id, tenantID, period)
	if err != nil {
		if isUniqueViolation(err) {
			return vacation.Balance{}, vacation.ErrPeriodExists
		}
		return vacation.Balance{}, fmt.Errorf("update vacation balance period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return vacation.Balance{}, vacation.ErrBalanceNotFound
	}
	return r.GetByID(ctx, tenantID, id)
}

// Delete implements vacation.BalanceRepository.
func (r *vacationBalanceRepositoryImpl) Delete(ctx context.Context, tenantID, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM vacation_balances WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("delete vacation balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return vacation.ErrBalanceNotFound
	}
	return nil
}
