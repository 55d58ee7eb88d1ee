package notification

import (
	"time"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/validator"
)

const maxTitleLength = 150

type NotifyRequest struct {
	TenantID   int64
	EmployeeID int64
	Channel    Channel
	Title      string
	Body       string
	ActionURL  *string
}

func (r *NotifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TenantID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "tenant_id", Message: "tenant_id is required"})
	}
	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "empleado_id", Message: "empleado_id is required"})
	}
	if !r.Channel.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "canal", Message: "canal is invalid"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "titulo", Message: "titulo is required"})
	} else if validator.ExceedsLength(r.Title, maxTitleLength) {
		errs = append(errs, validator.ValidationError{Field: "titulo", Message: "titulo must not exceed 150 characters"})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{Field: "mensaje", Message: "mensaje is required"})
	}
	if r.ActionURL != nil && validator.ExceedsLength(*r.ActionURL, maxTitleLength) {
		errs = append(errs, validator.ValidationError{Field: "accion_url", Message: "accion_url must not exceed 150 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NotificationResponse struct {
	ID           int64      `json:"id"`
	EmployeeID   int64      `json:"empleado_id"`
	Channel      Channel    `json:"canal"`
	ChannelLabel string     `json:"canal_label"`
	Title        string     `json:"titulo"`
	Body         string     `json:"mensaje"`
	ActionURL    *string    `json:"accion_url"`
	SentAt       time.Time  `json:"enviada_el"`
	ReadAt       *time.Time `json:"leida_el"`
	IsRead       bool       `json:"leida"`
}

func NewNotificationResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:           n.ID,
		EmployeeID:   n.EmployeeID,
		Channel:      n.Channel,
		ChannelLabel: n.Channel.Label(),
		Title:        n.Title,
		Body:         n.Body,
		ActionURL:    n.ActionURL,
		SentAt:       n.SentAt,
		ReadAt:       n.ReadAt,
		IsRead:       n.IsRead(),
	}
}

type ListResponse struct {
	Notifications []NotificationResponse `json:"results"`
	Count         int                    `json:"count"`
	UnreadCount   int                    `json:"unread_count"`
}

type MarkAllResponse struct {
	Updated int64 `json:"actualizadas"`
}
