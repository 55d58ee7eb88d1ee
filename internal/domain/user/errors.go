package user

import "github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/apperror"

var (
	ErrInvalidToken            = apperror.Unauthorized("invalid or missing access token")
	ErrTenantRequired          = apperror.Unauthorized("token has no tenant binding")
	ErrEmployeeRequired        = apperror.Unauthorized("token has no employee binding")
	ErrRoleRequired            = apperror.Unauthorized("token has no valid role")
	ErrActorRequired           = apperror.Unauthorized("token has no user binding")
	ErrScopeMissing            = apperror.Unauthorized("request scope not resolved")
	ErrInsufficientPermissions = apperror.Forbidden("insufficient permissions")
)
