package vacation

import "github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/apperror"

var (
	ErrBalanceNotFound = apperror.NotFound("vacation balance not found")
	ErrPeriodExists    = apperror.FieldConflict("periodo", "this period already exists for the employee")
)
