package absence

import (
	"context"
	"io"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
)

type TypeService interface {
	List(ctx context.Context, sc user.Scope) ([]AbsenceType, error)
	Get(ctx context.Context, sc user.Scope, id int64) (AbsenceType, error)
	Create(ctx context.Context, sc user.Scope, req CreateTypeRequest) (AbsenceType, error)
	Update(ctx context.Context, sc user.Scope, id int64, req UpdateTypeRequest) (AbsenceType, error)
	Delete(ctx context.Context, sc user.Scope, id int64) error
}

type RequestService interface {
	// Employee self service
	Submit(ctx context.Context, sc user.Scope, req SubmitRequest) (AbsenceRequest, error)
	ListOwn(ctx context.Context, sc user.Scope) ([]AbsenceRequest, error)
	GetOwn(ctx context.Context, sc user.Scope, id int64) (AbsenceRequest, error)
	EditOwn(ctx context.Context, sc user.Scope, id int64, req EditRequest) (AbsenceRequest, error)
	Cancel(ctx context.Context, sc user.Scope, id int64) error
	AttachSupport(ctx context.Context, sc user.Scope, id int64, file io.Reader, filename string) (AbsenceRequest, error)

	// Reviewers
	ListPendingForManager(ctx context.Context, sc user.Scope) ([]AbsenceRequest, error)
	ListPendingForHR(ctx context.Context, sc user.Scope) ([]AbsenceRequest, error)
	FetchDetail(ctx context.Context, sc user.Scope, id int64) (AbsenceRequest, error)
	ListAll(ctx context.Context, sc user.Scope) ([]AbsenceRequest, error)
}

type WorkflowService interface {
	Decide(ctx context.Context, sc user.Scope, id int64, in DecideInput) (AbsenceRequest, error)
	ListDecisions(ctx context.Context, sc user.Scope) ([]ApprovalDecision, error)
}
