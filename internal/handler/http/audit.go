package http

import (
	"net/http"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/handler/http/response"
)

// AuditHandler serves the auditor's read-only tenant views.
type AuditHandler interface {
	Requests(w http.ResponseWriter, r *http.Request)
	Decisions(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	requestService  absence.RequestService
	workflowService absence.WorkflowService
	balanceService  vacation.Service
}

func NewAuditHandler(requestService absence.RequestService, workflowService absence.WorkflowService, balanceService vacation.Service) AuditHandler {
	return &auditHandlerImpl{
		requestService:  requestService,
		workflowService: workflowService,
		balanceService:  balanceService,
	}
}

// Requests implements AuditHandler.
func (h *auditHandlerImpl) Requests(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}

	requests, err := h.requestService.ListAll(r.Context(), sc)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, absence.NewRequestResponses(requests))
}

// Decisions implements AuditHandler.
func (h *auditHandlerImpl) Decisions(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}

	decisions, err := h.workflowService.ListDecisions(r.Context(), sc)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, absence.NewApprovalResponses(decisions))
}

// Balances implements AuditHandler.
func (h *auditHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}

	balances, err := h.balanceService.ListForAudit(r.Context(), sc)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, vacation.NewBalanceResponses(balances))
}
