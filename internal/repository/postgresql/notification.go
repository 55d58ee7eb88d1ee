package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

const notificationColumns = `id, tenant_id, employee_id, channel, title, body, action_url, sent_at, read_at`

func scanNotification(row pgx.Row) (notification.Notification, error) {
	var n notification.Notification
	var channel int16
	err := row.Scan(&n.ID, &n.TenantID, &n.EmployeeID, &channel, &n.Title, &n.Body, &n.ActionURL, &n.SentAt, &n.ReadAt)
	n.Channel = notification.Channel(channel)
	return n, err
}

// Create implements notification.Repository.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (tenant_id, employee_id, channel, title, body, action_url, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query,
		n.TenantID, n.EmployeeID, int16(n.Channel), n.Title, n.Body, n.ActionURL, n.SentAt,
	).Scan(&n.ID); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

// ListByEmployee implements notification.Repository.
func (r *notificationRepositoryImpl) ListByEmployee(ctx context.Context, tenantID, employeeID int64, unreadOnly bool) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE tenant_id = $1 AND employee_id = $2`
	if unreadOnly {
		query += " AND read_at IS NULL"
	}
	query += " ORDER BY sent_at DESC, id DESC"

	rows, err := q.Query(ctx, query, tenantID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]notification.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// CountUnread implements notification.Repository.
func (r *notificationRepositoryImpl) CountUnread(ctx context.Context, tenantID, employeeID int64) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE tenant_id = $1 AND employee_id = $2 AND read_at IS NULL`,
		tenantID, employeeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkAsRead implements notification.Repository.
func (r *notificationRepositoryImpl) MarkAsRead(ctx context.Context, tenantID, employeeID, id int64, at time.Time) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET read_at = COALESCE(read_at, $4)
		WHERE id = $1 AND tenant_id = $2 AND employee_id = $3
		RETURNING ` + notificationColumns

	n, err := scanNotification(q.QueryRow(ctx, query, id, tenantID, employeeID, at))
	if err != nil {
		if isNoRows(err) {
			return notification.Notification{}, notification.ErrNotificationNotFound
		}
		return notification.Notification{}, fmt.Errorf("mark notification as read: %w", err)
	}
	return n, nil
}

// MarkAllAsRead implements notification.Repository.
func (r *notificationRepositoryImpl) MarkAllAsRead(ctx context.Context, tenantID, employeeID int64, at time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE notifications SET read_at = $3 WHERE tenant_id = $1 AND employee_id = $2 AND read_at IS NULL`,
		tenantID, employeeID, at,
	)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications as read: %w", err)
	}
	return tag.RowsAffected(), nil
}
