package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/database"
)

type approvalRepositoryImpl struct {
	db *database.DB
}

func NewApprovalDecisionRepository(db *database.DB) absence.ApprovalDecisionRepository {
	return &approvalRepositoryImpl{db: db}
}

// Create implements absence.ApprovalDecisionRepository.
func (r *approvalRepositoryImpl) Create(ctx context.Context, d absence.ApprovalDecision) (absence.ApprovalDecision, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absence_approvals (request_id, approver_user_id, action, comment, decided_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, d.RequestID, d.ApproverUserID, int16(d.Action), d.Comment, d.DecidedAt).Scan(&d.ID); err != nil {
		return absence.ApprovalDecision{}, fmt.Errorf("create approval decision: %w", err)
	}
	return d, nil
}

// List implements absence.ApprovalDecisionRepository.
func (r *approvalRepositoryImpl) List(ctx context.Context, filter absence.DecisionFilter) ([]absence.ApprovalDecision, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT aa.id, aa.request_id, aa.approver_user_id, aa.action, aa.comment, aa.decided_at,
			   ar.id, ar.tenant_id, ar.employee_id, ar.absence_type_id, ar.start_date, ar.end_date,
			   ar.business_days, ar.reason, ar.status, ar.current_step, ar.attachment_url, ar.created_at,
			   e.id, e.tenant_id, e.manager_id, e.first_name, e.last_name, e.email,
			   t.name
		FROM absence_approvals aa
		INNER JOIN absence_requests ar ON ar.id = aa.request_id
		INNER JOIN employees e ON e.id = ar.employee_id
		INNER JOIN absence_types t ON t.id = ar.absence_type_id
		WHERE ar.tenant_id = $1
	`
	args := []interface{}{filter.TenantID}
	if filter.ApproverUserID != nil {
		query += " AND aa.approver_user_id = $2"
		args = append(args, *filter.ApproverUserID)
	}
	query += " ORDER BY aa.decided_at DESC, aa.id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list approval decisions: %w", err)
	}
	defer rows.Close()

	decisions := make([]absence.ApprovalDecision, 0)
	for rows.Next() {
		var d absence.ApprovalDecision
		var action, status int16
		req := &d.Request
		err := rows.Scan(
			&d.ID, &d.RequestID, &d.ApproverUserID, &action, &d.Comment, &d.DecidedAt,
			&req.ID, &req.TenantID, &req.EmployeeID, &req.AbsenceTypeID, &req.StartDate, &req.EndDate,
			&req.BusinessDays, &req.Reason, &status, &req.CurrentStep, &req.AttachmentURL, &req.CreatedAt,
			&req.Employee.ID, &req.Employee.TenantID, &req.Employee.ManagerID,
			&req.Employee.FirstName, &req.Employee.LastName, &req.Employee.Email,
			&req.AbsenceTypeName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan approval decision: %w", err)
		}
		d.Action = absence.Action(action)
		req.Status = absence.Status(status)
		decisions = append(decisions, d)
	}
	return decisions, rows.Err()
}
