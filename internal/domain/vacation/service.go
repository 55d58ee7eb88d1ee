package vacation

import (
	"context"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
)

type Service interface {
	Create(ctx context.Context, sc user.Scope, req CreateBalanceRequest) (Balance, error)
	List(ctx context.Context, sc user.Scope) ([]Balance, error)
	ListForAudit(ctx context.Context, sc user.Scope) ([]Balance, error)
	RenamePeriod(ctx context.Context, sc user.Scope, id int64, req RenamePeriodRequest) (Balance, error)
	Delete(ctx context.Context, sc user.Scope, id int64) error
	ListEmployees(ctx context.Context, sc user.Scope) ([]employee.Employee, error)
}
