package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/database"
)

type absenceTypeRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceTypeRepository(db *database.DB) absence.AbsenceTypeRepository {
	return &absenceTypeRepositoryImpl{db: db}
}

// Create implements absence.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) Create(ctx context.Context, t absence.AbsenceType) (absence.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absence_types (tenant_id, name, affects_pay, requires_support_doc)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, t.TenantID, t.Name, t.AffectsPay, t.RequiresSupportDoc).Scan(&t.ID); err != nil {
		if isUniqueViolation(err) {
			return absence.AbsenceType{}, absence.ErrTypeNameExists
		}
		return absence.AbsenceType{}, fmt.Errorf("create absence type: %w", err)
	}
	return t, nil
}

// GetByID implements absence.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) GetByID(ctx context.Context, tenantID, id int64) (absence.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, name, affects_pay, requires_support_doc
		FROM absence_types
		WHERE id = $1 AND tenant_id = $2
	`

	var t absence.AbsenceType
	err := q.QueryRow(ctx, query, id, tenantID).Scan(&t.ID, &t.TenantID, &t.Name, &t.AffectsPay, &t.RequiresSupportDoc)
	if err != nil {
		if isNoRows(err) {
			return absence.AbsenceType{}, absence.ErrTypeNotFound
		}
		return absence.AbsenceType{}, fmt.Errorf("get absence type: %w", err)
	}
	return t, nil
}

// List implements absence.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) List(ctx context.Context, tenantID int64) ([]absence.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, name, affects_pay, requires_support_doc
		FROM absence_types
		WHERE tenant_id = $1
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list absence types: %w", err)
	}
	defer rows.Close()

	types := make([]absence.AbsenceType, 0)
	for rows.Next() {
		var t absence.AbsenceType
		if err := rows.Scan(&t.ID, &t.TenantID, &t.Name, &t.AffectsPay, &t.RequiresSupportDoc); err != nil {
			return nil, fmt.Errorf("scan absence type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// Update implements absence.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) Update(ctx context.Context, t absence.AbsenceType) (absence.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absence_types
		SET name = $3, affects_pay = $4, requires_support_doc = $5
		WHERE id = $1 AND tenant_id = $2
	`

	tag, err := q.Exec(ctx, query, t.ID, t.TenantID, t.Name, t.AffectsPay, t.RequiresSupportDoc)
	if err != nil {
		if isUniqueViolation(err) {
			return absence.AbsenceType{}, absence.ErrTypeNameExists
		}
		return absence.AbsenceType{}, fmt.Errorf("update absence type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return absence.AbsenceType{}, absence.ErrTypeNotFound
	}
	return t, nil
}

// Delete implements absence.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) Delete(ctx context.Context, tenantID, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM absence_types WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return absence.ErrTypeInUse
		}
		return fmt.Errorf("delete absence type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrTypeNotFound
	}
	return nil
}
