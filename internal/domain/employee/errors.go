package employee

import "github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/apperror"

var (
	ErrEmployeeNotFound = apperror.NotFound("Empleado no encontrado.")
)
