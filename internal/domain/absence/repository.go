package absence

import "context"

// RequestFilter narrows request reads. TenantID is always applied; the
// optional fields add owner, manager and status restrictions.
type RequestFilter struct {
	TenantID    int64
	EmployeeID  *int64
	ManagerID   *int64
	Status      *Status
	OldestFirst bool
}

type DecisionFilter struct {
	TenantID       int64
	ApproverUserID *int64
}

type AbsenceTypeRepository interface {
	Create(ctx context.Context, t AbsenceType) (AbsenceType, error)
	GetByID(ctx context.Context, tenantID, id int64) (AbsenceType, error)
	List(ctx context.Context, tenantID int64) ([]AbsenceType, error)
	Update(ctx context.Context, t AbsenceType) (AbsenceType, error)
	Delete(ctx context.Context, tenantID, id int64) error
}

type AbsenceRequestRepository interface {
	Create(ctx context.Context, r AbsenceRequest) (AbsenceRequest, error)
	GetByID(ctx context.Context, filter RequestFilter, id int64) (AbsenceRequest, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, filter RequestFilter, id int64) (AbsenceRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]AbsenceRequest, error)
	// UpdatePending rewrites the editable fields of a pending request.
	// Returns ErrStatusChanged when the row is no longer pending.
	UpdatePending(ctx context.Context, r AbsenceRequest) error
	// TransitionStatus moves a request from one status to another.
	// Returns ErrStatusChanged when the row is not in the from status.
	TransitionStatus(ctx context.Context, id int64, from, to Status) error
}

type ApprovalDecisionRepository interface {
	Create(ctx context.Context, d ApprovalDecision) (ApprovalDecision, error)
	List(ctx context.Context, filter DecisionFilter) ([]ApprovalDecision, error)
}
