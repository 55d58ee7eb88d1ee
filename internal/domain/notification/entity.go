package notification

import (
	"time"
)

// Channel is the delivery channel recorded on a notification. Values are
// persisted as small integers.
type Channel int16

const (
	ChannelApp      Channel = 1
	ChannelEmail    Channel = 2
	ChannelWhatsApp Channel = 3
	ChannelWebhook  Channel = 4
)

func (c Channel) IsValid() bool {
	return c >= ChannelApp && c <= ChannelWebhook
}

func (c Channel) Label() string {
	switch c {
	case ChannelApp:
		return "app"
	case ChannelEmail:
		return "email"
	case ChannelWhatsApp:
		return "whatsapp"
	case ChannelWebhook:
		return "webhook"
	default:
		return "desconocido"
	}
}

// Notification is a message addressed to one employee of a tenant
type Notification struct {
	ID         int64
	TenantID   int64
	EmployeeID int64
	Channel    Channel
	Title      string
	Body       string
	ActionURL  *string
	SentAt     time.Time
	ReadAt     *time.Time
}

func (n Notification) IsRead() bool {
	return n.ReadAt != nil
}
