package vacation

import (
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// Balance tracks the vacation days of one employee for one period label.
type Balance struct {
	ID            int64
	TenantID      int64
	EmployeeID    int64
	Period        string
	DaysAssigned  decimal.Decimal
	DaysUsed      decimal.Decimal
	DaysAvailable decimal.Decimal

	// Joined on read
	Employee employee.Employee
}

// NewBalance opens a period with nothing used yet.
func NewBalance(tenantID, employeeID int64, period string, assigned decimal.Decimal) Balance {
	return Balance{
		TenantID:      tenantID,
		EmployeeID:    employeeID,
		Period:        period,
		DaysAssigned:  assigned,
		DaysUsed:      decimal.Zero,
		DaysAvailable: assigned,
	}
}
