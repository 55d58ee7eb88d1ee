package notification

import (
	"context"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/sse"
)

// Emitter appends notifications. Notify runs inside the caller's transaction
// when given a transactional context; Deliver pushes an already committed
// notification to the recipient's open streams.
type Emitter interface {
	Notify(ctx context.Context, req NotifyRequest) (Notification, error)
	Deliver(n Notification)
}

// Service defines the recipient facing notification operations
type Service interface {
	Emitter
	List(ctx context.Context, sc user.Scope, unreadOnly bool) (ListResponse, error)
	MarkAsRead(ctx context.Context, sc user.Scope, id int64) (Notification, error)
	MarkAllAsRead(ctx context.Context, sc user.Scope) (int64, error)
	Subscribe(sc user.Scope) (<-chan sse.Event, func(), error)
}
