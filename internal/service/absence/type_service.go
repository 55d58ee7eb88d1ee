package absence

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
)

var _ absence.TypeService = (*TypeService)(nil)

type TypeService struct {
	types absence.AbsenceTypeRepository
}

func NewTypeService(repo absence.AbsenceTypeRepository) *TypeService {
	return &TypeService{types: repo}
}

// List implements absence.TypeService.
func (s *TypeService) List(ctx context.Context, sc user.Scope) ([]absence.AbsenceType, error) {
	types, err := s.types.List(ctx, sc.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence types: %w", err)
	}
	return types, nil
}

// Get implements absence.TypeService.
func (s *TypeService) Get(ctx context.Context, sc user.Scope, id int64) (absence.AbsenceType, error) {
	return s.types.GetByID(ctx, sc.TenantID, id)
}

// Create implements absence.TypeService.
func (s *TypeService) Create(ctx context.Context, sc user.Scope, req absence.CreateTypeRequest) (absence.AbsenceType, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceType{}, err
	}

	created, err := s.types.Create(ctx, absence.AbsenceType{
		TenantID:           sc.TenantID,
		Name:               strings.TrimSpace(req.Name),
		AffectsPay:         bool(req.AffectsPay),
		RequiresSupportDoc: bool(req.RequiresSupportDoc),
	})
	if err != nil {
		return absence.AbsenceType{}, fmt.Errorf("failed to create absence type: %w", err)
	}
	return created, nil
}

// Update implements absence.TypeService.
func (s *TypeService) Update(ctx context.Context, sc user.Scope, id int64, req absence.UpdateTypeRequest) (absence.AbsenceType, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceType{}, err
	}

	current, err := s.types.GetByID(ctx, sc.TenantID, id)
	if err != nil {
		return absence.AbsenceType{}, err
	}

	if req.Name != nil {
		current.Name = strings.TrimSpace(*req.Name)
	}
	if req.AffectsPay != nil {
		current.AffectsPay = bool(*req.AffectsPay)
	}
	if req.RequiresSupportDoc != nil {
		current.RequiresSupportDoc = bool(*req.RequiresSupportDoc)
	}

	updated, err := s.types.Update(ctx, current)
	if err != nil {
		return absence.AbsenceType{}, fmt.Errorf("failed to update absence type: %w", err)
	}
	return updated, nil
}

// Delete implements absence.TypeService.
func (s *TypeService) Delete(ctx context.Context, sc user.Scope, id int64) error {
	if err := s.types.Delete(ctx, sc.TenantID, id); err != nil {
		return fmt.Errorf("failed to delete absence type: %w", err)
	}
	return nil
}
