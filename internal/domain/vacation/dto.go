package vacation

import (
	"strings"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const maxPeriodLength = 150

// numeric(5,2)
var maxDays = decimal.RequireFromString("999.99")

type CreateBalanceRequest struct {
	EmployeeID   int64           `json:"empleado_id"`
	Period       string          `json:"periodo"`
	DaysAssigned decimal.Decimal `json:"dias_asignados"`
}

func (r *CreateBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "empleado_id",
			Message: "empleado_id is required",
		})
	}

	errs = append(errs, validatePeriod(r.Period)...)

	switch {
	case r.DaysAssigned.IsNegative():
		errs = append(errs, validator.ValidationError{
			Field:   "dias_asignados",
			Message: "dias_asignados must be greater than or equal to 0",
		})
	case r.DaysAssigned.GreaterThan(maxDays):
		errs = append(errs, validator.ValidationError{
			Field:   "dias_asignados",
			Message: "dias_asignados must not exceed 999.99",
		})
	case !r.DaysAssigned.Equal(r.DaysAssigned.Round(2)):
		errs = append(errs, validator.ValidationError{
			Field:   "dias_asignados",
			Message: "dias_asignados allows at most 2 decimal places",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RenamePeriodRequest struct {
	Period string `json:"periodo"`
}

func (r *RenamePeriodRequest) Validate() error {
	if errs := validatePeriod(r.Period); len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriod(period string) validator.ValidationErrors {
	if validator.IsEmpty(period) {
		return validator.Field("periodo", "periodo is required")
	}
	if validator.ExceedsLength(strings.TrimSpace(period), maxPeriodLength) {
		return validator.Field("periodo", "periodo must not exceed 150 characters")
	}
	return nil
}

type BalanceResponse struct {
	ID                int64           `json:"id"`
	EmployeeID        int64           `json:"empleado_id"`
	EmployeeFirstName string          `json:"empleado_nombres"`
	EmployeeLastName  string          `json:"empleado_apellidos"`
	EmployeeEmail     string          `json:"empleado_email"`
	Period            string          `json:"periodo"`
	DaysAssigned      decimal.Decimal `json:"dias_asignados"`
	DaysUsed          decimal.Decimal `json:"dias_tomados"`
	DaysAvailable     decimal.Decimal `json:"dias_disponibles"`
}

func NewBalanceResponse(b Balance) BalanceResponse {
	return BalanceResponse{
		ID:                b.ID,
		EmployeeID:        b.EmployeeID,
		EmployeeFirstName: b.Employee.FirstName,
		EmployeeLastName:  b.Employee.LastName,
		EmployeeEmail:     b.Employee.Email,
		Period:            b.Period,
		DaysAssigned:      b.DaysAssigned,
		DaysUsed:          b.DaysUsed,
		DaysAvailable:     b.DaysAvailable,
	}
}

func NewBalanceResponses(items []Balance) []BalanceResponse {
	out := make([]BalanceResponse, 0, len(items))
	for _, b := range items {
		out = append(out, NewBalanceResponse(b))
	}
	return out
}
