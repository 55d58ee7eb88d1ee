package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "internal server error")
		return
	}

	switch appErr.Kind {
	case apperror.KindValidation:
		if appErr.Field != "" {
			ValidationError(w, map[string]string{appErr.Field: appErr.Message})
			return
		}
		BadRequest(w, appErr.Message)
	case apperror.KindInvalidState:
		BadRequest(w, appErr.Message)
	case apperror.KindUnauthorized:
		Unauthorized(w, appErr.Message)
	case apperror.KindForbidden:
		Forbidden(w, appErr.Message)
	case apperror.KindNotFound:
		NotFound(w, appErr.Message)
	case apperror.KindConflict:
		if appErr.Field != "" {
			FieldConflict(w, appErr.Field, appErr.Message)
			return
		}
		Conflict(w, appErr.Message)
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "internal server error")
	}
}
