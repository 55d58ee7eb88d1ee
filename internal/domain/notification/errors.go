package notification

import "github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/apperror"

var (
	ErrNotificationNotFound = apperror.NotFound("notification not found")
	ErrRecipientRequired    = apperror.Forbidden("actor has no employee record")
	ErrStreamUnavailable    = apperror.NotFound("live notifications are disabled")
)
