package vacation

import "context"

type BalanceOrder int

const (
	OrderNewest BalanceOrder = iota
	OrderPeriodThenName
)

type BalanceRepository interface {
	// Create returns ErrPeriodExists on a duplicate (tenant, employee, period).
	Create(ctx context.Context, b Balance) (Balance, error)
	GetByID(ctx context.Context, tenantID, id int64) (Balance, error)
	List(ctx context.Context, tenantID int64, order BalanceOrder) ([]Balance, error)
	// UpdatePeriod returns ErrPeriodExists when the new label collides.
	UpdatePeriod(ctx context.Context, tenantID, id int64, period string) (Balance, error)
	Delete(ctx context.Context, tenantID, id int64) error
}
