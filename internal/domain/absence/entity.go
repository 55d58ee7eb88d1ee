package absence

import (
	"time"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/employee"
)

// Status is the lifecycle state of an absence request. The integer values are
// persisted and sent on the wire.
type Status int16

const (
	StatusPending   Status = 1
	StatusApproved  Status = 2
	StatusRejected  Status = 3
	StatusCancelled Status = 4
)

func (s Status) IsValid() bool {
	return s >= StatusPending && s <= StatusCancelled
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s != StatusPending
}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "pendiente"
	case StatusApproved:
		return "aprobado"
	case StatusRejected:
		return "rechazado"
	case StatusCancelled:
		return "cancelado"
	default:
		return "desconocido"
	}
}

// Action is the decision taken by an approver.
type Action int16

const (
	ActionApprove Action = 1
	ActionReject  Action = 2
)

func (a Action) IsValid() bool {
	return a == ActionApprove || a == ActionReject
}

func (a Action) Label() string {
	switch a {
	case ActionApprove:
		return "aprobado"
	case ActionReject:
		return "rechazado"
	default:
		return "desconocido"
	}
}

// ResultingStatus is the status a pending request moves to under this action.
func (a Action) ResultingStatus() Status {
	if a == ActionApprove {
		return StatusApproved
	}
	return StatusRejected
}

type AbsenceType struct {
	ID                 int64
	TenantID           int64
	Name               string
	AffectsPay         bool
	RequiresSupportDoc bool
}

type AbsenceRequest struct {
	ID            int64
	TenantID      int64
	EmployeeID    int64
	AbsenceTypeID int64
	StartDate     time.Time
	EndDate       *time.Time
	BusinessDays  int
	Reason        string
	Status        Status
	CurrentStep   int
	AttachmentURL *string
	CreatedAt     time.Time

	// Joined on read
	Employee        employee.Employee
	AbsenceTypeName string
}

// EffectiveEndDate is EndDate, or StartDate for single-day requests.
func (r AbsenceRequest) EffectiveEndDate() time.Time {
	if r.EndDate != nil {
		return *r.EndDate
	}
	return r.StartDate
}

func (r AbsenceRequest) IsPending() bool {
	return r.Status == StatusPending
}

// BusinessDays counts calendar days from start to end inclusive. A nil end
// means a single day. Weekends and holidays are not excluded.
func BusinessDays(start time.Time, end *time.Time) int {
	if end == nil {
		return 1
	}
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int((e.Unix()-s.Unix())/86400) + 1
}

type ApprovalDecision struct {
	ID             int64
	RequestID      int64
	ApproverUserID int64
	Action         Action
	Comment        string
	DecidedAt      time.Time

	// Joined on read
	Request AbsenceRequest
}
