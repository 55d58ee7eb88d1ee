package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/sse"
)

const eventNotification = "notification"

var _ notification.Service = (*NotificationService)(nil)

type NotificationService struct {
	repo notification.Repository
	hub  *sse.Hub
	now  func() time.Time
}

// NewNotificationService builds the service. A nil hub disables live
// delivery; notifications are still stored.
func NewNotificationService(repo notification.Repository, hub *sse.Hub) *NotificationService {
	return &NotificationService{
		repo: repo,
		hub:  hub,
		now:  time.Now,
	}
}

// Notify appends one notification addressed to an employee. read_at starts
// unset.
func (s *NotificationService) Notify(ctx context.Context, req notification.NotifyRequest) (notification.Notification, error) {
	if err := req.Validate(); err != nil {
		return notification.Notification{}, err
	}

	n := notification.Notification{
		TenantID:   req.TenantID,
		EmployeeID: req.EmployeeID,
		Channel:    req.Channel,
		Title:      strings.TrimSpace(req.Title),
		Body:       req.Body,
		ActionURL:  req.ActionURL,
		SentAt:     s.now().UTC(),
	}
	if err := s.repo.Create(ctx, &n); err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}
	return n, nil
}

// Deliver pushes n to the recipient's open streams
func (s *NotificationService) Deliver(n notification.Notification) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(inbox(n.TenantID, n.EmployeeID), sse.Event{
		Name: eventNotification,
		Data: notification.NewNotificationResponse(n),
	})
}

// Subscribe opens a live stream on the actor's inbox
func (s *NotificationService) Subscribe(sc user.Scope) (<-chan sse.Event, func(), error) {
	if !sc.HasEmployee() {
		return nil, nil, notification.ErrRecipientRequired
	}
	if s.hub == nil {
		return nil, nil, notification.ErrStreamUnavailable
	}
	events, cleanup := s.hub.Subscribe(inbox(sc.TenantID, sc.EmployeeID))
	return events, cleanup, nil
}

func inbox(tenantID, employeeID int64) sse.Subscriber {
	return sse.Subscriber{TenantID: tenantID, EmployeeID: employeeID}
}

// List returns the inbox of the acting employee, newest first
func (s *NotificationService) List(ctx context.Context, sc user.Scope, unreadOnly bool) (notification.ListResponse, error) {
	if !sc.HasEmployee() {
		return notification.ListResponse{}, notification.ErrRecipientRequired
	}

	items, err := s.repo.ListByEmployee(ctx, sc.TenantID, sc.EmployeeID, unreadOnly)
	if err != nil {
		return notification.ListResponse{}, fmt.Errorf("failed to list notifications: %w", err)
	}
	unread, err := s.repo.CountUnread(ctx, sc.TenantID, sc.EmployeeID)
	if err != nil {
		return notification.ListResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	resp := notification.ListResponse{
		Notifications: make([]notification.NotificationResponse, 0, len(items)),
		Count:         len(items),
		UnreadCount:   unread,
	}
	for _, n := range items {
		resp.Notifications = append(resp.Notifications, notification.NewNotificationResponse(n))
	}
	return resp, nil
}

// MarkAsRead sets read_at on the actor's own notification. Calling it again
// keeps the first timestamp.
func (s *NotificationService) MarkAsRead(ctx context.Context, sc user.Scope, id int64) (notification.Notification, error) {
	if !sc.HasEmployee() {
		return notification.Notification{}, notification.ErrRecipientRequired
	}
	return s.repo.MarkAsRead(ctx, sc.TenantID, sc.EmployeeID, id, s.now().UTC())
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, sc user.Scope) (int64, error) {
	if !sc.HasEmployee() {
		return 0, notification.ErrRecipientRequired
	}
	updated, err := s.repo.MarkAllAsRead(ctx, sc.TenantID, sc.EmployeeID, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return updated, nil
}
