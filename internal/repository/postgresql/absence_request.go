package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const absenceRequestSelect = `
	SELECT ar.id, ar.tenant_id, ar.employee_id, ar.absence_type_id, ar.start_date, ar.end_date,
		   ar.business_days, ar.reason, ar.status, ar.current_step, ar.attachment_url, ar.created_at,
		   e.id, e.tenant_id, e.manager_id, e.first_name, e.last_name, e.email,
		   t.name
	FROM absence_requests ar
	INNER JOIN employees e ON e.id = ar.employee_id
	INNER JOIN absence_types t ON t.id = ar.absence_type_id
`

type absenceRequestRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRequestRepository(db *database.DB) absence.AbsenceRequestRepository {
	return &absenceRequestRepositoryImpl{db: db}
}

func scanAbsenceRequest(row pgx.Row) (absence.AbsenceRequest, error) {
	var req absence.AbsenceRequest
	var status int16
	err := row.Scan(
		&req.ID,
		&req.TenantID,
		&req.EmployeeID,
		&req.AbsenceTypeID,
		&req.StartDate,
		&req.EndDate,
		&req.BusinessDays,
		&req.Reason,
		&status,
		&req.CurrentStep,
		&req.AttachmentURL,
		&req.CreatedAt,
		&req.Employee.ID,
		&req.Employee.TenantID,
		&req.Employee.ManagerID,
		&req.Employee.FirstName,
		&req.Employee.LastName,
		&req.Employee.Email,
		&req.AbsenceTypeName,
	)
	req.Status = absence.Status(status)
	return req, err
}

// requestWhereClause renders the filter starting at placeholder $start.
func requestWhereClause(filter absence.RequestFilter, start int) (string, []interface{}) {
	conds := []string{fmt.Sprintf("ar.tenant_id = $%d", start)}
	args := []interface{}{filter.TenantID}

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, start+len(args)-1))
	}
	if filter.EmployeeID != nil {
		add("ar.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.ManagerID != nil {
		add("e.manager_id = $%d", *filter.ManagerID)
	}
	if filter.Status != nil {
		add("ar.status = $%d", int16(*filter.Status))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Create implements absence.AbsenceRequestRepository.
func (r *absenceRequestRepositoryImpl) Create(ctx context.Context, req absence.AbsenceRequest) (absence.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absence_requests (
			tenant_id, employee_id, absence_type_id,
			start_date, end_date, business_days, reason,
			status, current_step, attachment_url, created_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7,
			$8, $9, $10, $11
		)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		req.TenantID, req.EmployeeID, req.AbsenceTypeID,
		req.StartDate, req.EndDate, req.BusinessDays, req.Reason,
		int16(req.Status), req.CurrentStep, req.AttachmentURL, req.CreatedAt,
	).Scan(&id)
	if err != nil {
		return absence.AbsenceRequest{}, fmt.Errorf("create absence request: %w", err)
	}

	return r.GetByID(ctx, absence.RequestFilter{TenantID: req.TenantID}, id)
}

// GetByID implements absence.AbsenceRequestRepository.
func (r *absenceRequestRepositoryImpl) GetByID(ctx context.Context, filter absence.RequestFilter, id int64) (absence.AbsenceRequest, error) {
	return r.get(ctx, filter, id, false)
}

// GetByIDForUpdate implements absence.AbsenceRequestRepository.
func (r *absenceRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, filter absence.RequestFilter, id int64) (absence.AbsenceRequest, error) {
	return r.get(ctx, filter, id, true)
}

func (r *absenceRequestRepositoryImpl) get(ctx context.Context, filter absence.RequestFilter, id int64, lock bool) (absence.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	where, args := requestWhereClause(filter, 2)
	query := absenceRequestSelect + where + " AND ar.id = $1"
	if lock {
		query += " FOR UPDATE OF ar"
	}

	req, err := scanAbsenceRequest(q.QueryRow(ctx, query, append([]interface{}{id}, args...)...))
	if err != nil {
		if isNoRows(err) {
			return absence.AbsenceRequest{}, absence.ErrRequestNotFound
		}
		return absence.AbsenceRequest{}, fmt.Errorf("get absence request: %w", err)
	}
	return req, nil
}

// List implements absence.AbsenceRequestRepository.
func (r *absenceRequestRepositoryImpl) List(ctx context.Context, filter absence.RequestFilter) ([]absence.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	where, args := requestWhereClause(filter, 1)
	order := " ORDER BY ar.created_at DESC, ar.id DESC"
	if filter.OldestFirst {
		order = " ORDER BY ar.created_at ASC, ar.id ASC"
	}

	rows, err := q.Query(ctx, absenceRequestSelect+where+order, args...)
	if err != nil {
		return nil, fmt.Errorf("list absence requests: %w", err)
	}
	defer rows.Close()

	requests := make([]absence.AbsenceRequest, 0)
	for rows.Next() {
		req, err := scanAbsenceRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan absence request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// UpdatePending implements absence.AbsenceRequestRepository.
func (r *absenceRequestRepositoryImpl) UpdatePending(ctx context.Context, req absence.AbsenceRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absence_requests
		SET absence_type_id = $3, start_date = $4, end_date = $5,
			business_days = $6, reason = $7, attachment_url = $8
		WHERE id = $1 AND tenant_id = $2 AND status = $9
	`

	tag, err := q.Exec(ctx, query,
		req.ID, req.TenantID, req.AbsenceTypeID, req.StartDate, req.EndDate,
		req.BusinessDays, req.Reason, req.AttachmentURL, int16(absence.StatusPending),
	)
	if err != nil {
		return fmt.Errorf("update absence request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrStatusChanged
	}
	return nil
}

// TransitionStatus implements absence.AbsenceRequestRepository.
func (r *absenceRequestRepositoryImpl) TransitionStatus(ctx context.Context, id int64, from, to absence.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE absence_requests SET status = $3 WHERE id = $1 AND status = $2`,
		id, int16(from), int16(to),
	)
	if err != nil {
		return fmt.Errorf("transition absence request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrStatusChanged
	}
	return nil
}
