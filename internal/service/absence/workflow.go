package absence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/validator"
)

var _ absence.WorkflowService = (*WorkflowService)(nil)

type WorkflowService struct {
	tx        database.Transactor
	requests  absence.AbsenceRequestRepository
	decisions absence.ApprovalDecisionRepository
	notifier  notification.Emitter
	now       func() time.Time
}

func NewWorkflowService(tx database.Transactor, requests absence.AbsenceRequestRepository, decisions absence.ApprovalDecisionRepository, notifier notification.Emitter) *WorkflowService {
	return &WorkflowService{
		tx:        tx,
		requests:  requests,
		decisions: decisions,
		notifier:  notifier,
		now:       time.Now,
	}
}

// Decide approves or rejects a pending request. The status change, the
// decision row and the requester notification commit together or not at all.
func (s *WorkflowService) Decide(ctx context.Context, sc user.Scope, id int64, in absence.DecideInput) (absence.AbsenceRequest, error) {
	filter, err := approverFilter(sc)
	if err != nil {
		return absence.AbsenceRequest{}, err
	}
	if !in.Action.IsValid() {
		return absence.AbsenceRequest{}, validator.Field("accion", "accion must be 1 (approve) or 2 (reject)")
	}
	comment := absence.NormalizeComment(in.Comment)

	var (
		decided absence.AbsenceRequest
		sent    notification.Notification
	)
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		req, err := s.requests.GetByIDForUpdate(txCtx, filter, id)
		if err != nil {
			return err
		}
		if !req.IsPending() {
			return absence.ErrNotPending
		}

		next := in.Action.ResultingStatus()
		if err := s.requests.TransitionStatus(txCtx, req.ID, absence.StatusPending, next); err != nil {
			if errors.Is(err, absence.ErrStatusChanged) {
				return absence.ErrNotPending
			}
			return fmt.Errorf("failed to update absence request status: %w", err)
		}
		req.Status = next

		now := s.now().UTC()
		if _, err := s.decisions.Create(txCtx, absence.ApprovalDecision{
			RequestID:      req.ID,
			ApproverUserID: sc.ActorID,
			Action:         in.Action,
			Comment:        comment,
			DecidedAt:      now,
		}); err != nil {
			return fmt.Errorf("failed to record approval decision: %w", err)
		}

		actionURL := requestActionURL(req.ID)
		sent, err = s.notifier.Notify(txCtx, notification.NotifyRequest{
			TenantID:   req.TenantID,
			EmployeeID: req.EmployeeID,
			Channel:    notification.ChannelWebhook,
			Title:      decisionTitle,
			Body:       decisionMessage(in.Action, req),
			ActionURL:  &actionURL,
		})
		if err != nil {
			return fmt.Errorf("failed to notify requester: %w", err)
		}

		decided = req
		return nil
	})
	if err != nil {
		return absence.AbsenceRequest{}, err
	}
	s.notifier.Deliver(sent)

	slog.Info("absence request decided",
		"request_id", decided.ID,
		"tenant_id", sc.TenantID,
		"approver_id", sc.ActorID,
		"role", string(sc.Role),
		"status", decided.Status.Label(),
	)
	return decided, nil
}

// ListDecisions returns decisions visible to the actor: a manager sees the
// ones they made, HR and auditors see the tenant.
func (s *WorkflowService) ListDecisions(ctx context.Context, sc user.Scope) ([]absence.ApprovalDecision, error) {
	filter := absence.DecisionFilter{TenantID: sc.TenantID}
	switch sc.Role {
	case user.RoleManager:
		actorID := sc.ActorID
		filter.ApproverUserID = &actorID
	case user.RoleHR, user.RoleAuditor:
	default:
		return nil, absence.ErrReviewerRoleRequired
	}

	decisions, err := s.decisions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list approval decisions: %w", err)
	}
	return decisions, nil
}
