package absence

import "github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/apperror"

var (
	// Request errors
	ErrRequestNotFound = apperror.NotFound("absence request not found")
	ErrNotPending      = apperror.InvalidState("only pending requests can be decided")
	ErrNotCancellable  = apperror.InvalidState("No cancelable")
	ErrNotEditable     = apperror.InvalidState("only pending requests can be edited")
	ErrStatusChanged   = apperror.InvalidState("absence request status changed concurrently")

	// Approver errors
	ErrApproverRoleRequired = apperror.Forbidden("only managers and HR can decide absence requests")
	ErrReviewerRoleRequired = apperror.Forbidden("role cannot review absence requests")
	ErrEmployeeRequired     = apperror.Forbidden("actor has no employee record")

	// Type errors
	ErrTypeNotFound   = apperror.NotFound("absence type not found")
	ErrTypeNameExists = apperror.FieldConflict("nombre", "an absence type with this name already exists")
	ErrTypeInUse      = apperror.Conflict("absence type is referenced by existing requests")
)
