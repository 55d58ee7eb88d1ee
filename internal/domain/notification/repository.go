package notification

import (
	"context"
	"time"
)

// Repository defines the notification repository interface
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByEmployee(ctx context.Context, tenantID, employeeID int64, unreadOnly bool) ([]Notification, error)
	CountUnread(ctx context.Context, tenantID, employeeID int64) (int, error)
	// MarkAsRead sets read_at once; later calls keep the first timestamp.
	MarkAsRead(ctx context.Context, tenantID, employeeID, id int64, at time.Time) (Notification, error)
	MarkAllAsRead(ctx context.Context, tenantID, employeeID int64, at time.Time) (int64, error)
}
