package absence

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/service/file"
)

var _ absence.RequestService = (*RequestService)(nil)

type RequestService struct {
	tx       database.Transactor
	types    absence.AbsenceTypeRepository
	requests absence.AbsenceRequestRepository
	files    file.FileService
	now      func() time.Time
}

func NewRequestService(tx database.Transactor, types absence.AbsenceTypeRepository, requests absence.AbsenceRequestRepository, files file.FileService) *RequestService {
	return &RequestService{
		tx:       tx,
		types:    types,
		requests: requests,
		files:    files,
		now:      time.Now,
	}
}

// checkType verifies the absence type belongs to the actor's tenant.
func (s *RequestService) checkType(ctx context.Context, sc user.Scope, typeID int64) error {
	if _, err := s.types.GetByID(ctx, sc.TenantID, typeID); err != nil {
		if errors.Is(err, absence.ErrTypeNotFound) {
			return validator.Field("id_tipo_ausencia", "absence type does not exist")
		}
		return fmt.Errorf("failed to get absence type: %w", err)
	}
	return nil
}

// Submit implements absence.RequestService.
func (s *RequestService) Submit(ctx context.Context, sc user.Scope, req absence.SubmitRequest) (absence.AbsenceRequest, error) {
	if !sc.HasEmployee() {
		return absence.AbsenceRequest{}, absence.ErrEmployeeRequired
	}
	if err := req.Validate(); err != nil {
		return absence.AbsenceRequest{}, err
	}
	if err := s.checkType(ctx, sc, req.AbsenceTypeID); err != nil {
		return absence.AbsenceRequest{}, err
	}

	start, end := req.Dates()
	created, err := s.requests.Create(ctx, absence.AbsenceRequest{
		TenantID:      sc.TenantID,
		EmployeeID:    sc.EmployeeID,
		AbsenceTypeID: req.AbsenceTypeID,
		StartDate:     start,
		EndDate:       end,
		BusinessDays:  absence.BusinessDays(start, end),
		Reason:        strings.TrimSpace(req.Reason),
		Status:        absence.StatusPending,
		CurrentStep:   1,
		CreatedAt:     s.now().UTC(),
	})
	if err != nil {
		return absence.AbsenceRequest{}, fmt.Errorf("failed to create absence request: %w", err)
	}

	slog.Info("absence request submitted",
		"request_id", created.ID,
		"tenant_id", sc.TenantID,
		"employee_id", sc.EmployeeID,
		"business_days", created.BusinessDays,
	)
	return created, nil
}

// ListOwn implements absence.RequestService.
func (s *RequestService) ListOwn(ctx context.Context, sc user.Scope) ([]absence.AbsenceRequest, error) {
	filter, err := ownerFilter(sc)
	if err != nil {
		return nil, err
	}
	return s.requests.List(ctx, filter)
}

// GetOwn implements absence.RequestService.
func (s *RequestService) GetOwn(ctx context.Context, sc user.Scope, id int64) (absence.AbsenceRequest, error) {
	filter, err := ownerFilter(sc)
	if err != nil {
		return absence.AbsenceRequest{}, err
	}
	return s.requests.GetByID(ctx, filter, id)
}

// EditOwn implements absence.RequestService.
func (s *RequestService) EditOwn(ctx context.Context, sc user.Scope, id int64, req absence.EditRequest) (absence.AbsenceRequest, error) {
	filter, err := ownerFilter(sc)
	if err != nil {
		return absence.AbsenceRequest{}, err
	}
	if err := req.Validate(); err != nil {
		return absence.AbsenceRequest{}, err
	}
	if err := s.checkType(ctx, sc, req.AbsenceTypeID); err != nil {
		return absence.AbsenceRequest{}, err
	}

	start, end := req.Dates()
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		current, err := s.requests.GetByIDForUpdate(txCtx, filter, id)
		if err != nil {
			return err
		}
		if !current.IsPending() {
			return absence.ErrNotEditable
		}

		current.AbsenceTypeID = req.AbsenceTypeID
		current.StartDate = start
		current.EndDate = end
		current.BusinessDays = absence.BusinessDays(start, end)
		current.Reason = strings.TrimSpace(req.Reason)

		if err := s.requests.UpdatePending(txCtx, current); err != nil {
			if errors.Is(err, absence.ErrStatusChanged) {
				return absence.ErrNotEditable
			}
			return fmt.Errorf("failed to update absence request: %w", err)
		}
		return nil
	})
	if err != nil {
		return absence.AbsenceRequest{}, err
	}

	return s.requests.GetByID(ctx, filter, id)
}

// Cancel implements absence.RequestService.
func (s *RequestService) Cancel(ctx context.Context, sc user.Scope, id int64) error {
	filter, err := ownerFilter(sc)
	if err != nil {
		return err
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		current, err := s.requests.GetByIDForUpdate(txCtx, filter, id)
		if err != nil {
			return err
		}
		if !current.IsPending() {
			return absence.ErrNotCancellable
		}
		if err := s.requests.TransitionStatus(txCtx, id, absence.StatusPending, absence.StatusCancelled); err != nil {
			if errors.Is(err, absence.ErrStatusChanged) {
				return absence.ErrNotCancellable
			}
			return fmt.Errorf("failed to cancel absence request: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("absence request cancelled", "request_id", id, "tenant_id", sc.TenantID, "employee_id", sc.EmployeeID)
	return nil
}

// AttachSupport implements absence.RequestService.
func (s *RequestService) AttachSupport(ctx context.Context, sc user.Scope, id int64, r io.Reader, filename string) (absence.AbsenceRequest, error) {
	filter, err := ownerFilter(sc)
	if err != nil {
		return absence.AbsenceRequest{}, err
	}

	current, err := s.requests.GetByID(ctx, filter, id)
	if err != nil {
		return absence.AbsenceRequest{}, err
	}
	if !current.IsPending() {
		return absence.AbsenceRequest{}, absence.ErrNotEditable
	}

	stored, err := s.files.UploadAbsenceAttachment(ctx, sc.TenantID, sc.EmployeeID, r, filename)
	if err != nil {
		return absence.AbsenceRequest{}, err
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		locked, err := s.requests.GetByIDForUpdate(txCtx, filter, id)
		if err != nil {
			return err
		}
		if !locked.IsPending() {
			return absence.ErrNotEditable
		}
		url := stored.URL
		locked.AttachmentURL = &url
		if err := s.requests.UpdatePending(txCtx, locked); err != nil {
			if errors.Is(err, absence.ErrStatusChanged) {
				return absence.ErrNotEditable
			}
			return fmt.Errorf("failed to store attachment url: %w", err)
		}
		return nil
	})
	if err != nil {
		if delErr := s.files.DeleteFile(ctx, stored.Path); delErr != nil {
			slog.Warn("failed to remove orphaned attachment", "path", stored.Path, "error", delErr)
		}
		return absence.AbsenceRequest{}, err
	}

	return s.requests.GetByID(ctx, filter, id)
}

// ListPendingForManager implements absence.RequestService.
func (s *RequestService) ListPendingForManager(ctx context.Context, sc user.Scope) ([]absence.AbsenceRequest, error) {
	if sc.Role != user.RoleManager {
		return nil, absence.ErrApproverRoleRequired
	}
	filter, err := approverFilter(sc)
	if err != nil {
		return nil, err
	}
	filter.Status = statusPtr(absence.StatusPending)
	filter.OldestFirst = true
	return s.requests.List(ctx, filter)
}

// ListPendingForHR implements absence.RequestService.
func (s *RequestService) ListPendingForHR(ctx context.Context, sc user.Scope) ([]absence.AbsenceRequest, error) {
	if sc.Role != user.RoleHR {
		return nil, absence.ErrApproverRoleRequired
	}
	return s.requests.List(ctx, absence.RequestFilter{
		TenantID: sc.TenantID,
		Status:   statusPtr(absence.StatusPending),
	})
}

// FetchDetail implements absence.RequestService.
func (s *RequestService) FetchDetail(ctx context.Context, sc user.Scope, id int64) (absence.AbsenceRequest, error) {
	filter, err := reviewerFilter(sc)
	if err != nil {
		return absence.AbsenceRequest{}, err
	}
	return s.requests.GetByID(ctx, filter, id)
}

// ListAll implements absence.RequestService.
func (s *RequestService) ListAll(ctx context.Context, sc user.Scope) ([]absence.AbsenceRequest, error) {
	if sc.Role != user.RoleAuditor && sc.Role != user.RoleHR {
		return nil, absence.ErrReviewerRoleRequired
	}
	return s.requests.List(ctx, absence.RequestFilter{TenantID: sc.TenantID})
}
