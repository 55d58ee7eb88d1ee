package http

import (
	"net/http"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/handler/http/response"
)

// ApprovalHandler serves the manager and HR review queues.
type ApprovalHandler interface {
	// Manager
	ManagerPending(w http.ResponseWriter, r *http.Request)
	ManagerDecide(w http.ResponseWriter, r *http.Request)

	// RRHH
	HRPending(w http.ResponseWriter, r *http.Request)
	HRDecide(w http.ResponseWriter, r *http.Request)

	// Shared
	Detail(w http.ResponseWriter, r *http.Request)
	Decisions(w http.ResponseWriter, r *http.Request)
}

type approvalHandlerImpl struct {
	requestService  absence.RequestService
	workflowService absence.WorkflowService
}

func NewApprovalHandler(requestService absence.RequestService, workflowService absence.WorkflowService) ApprovalHandler {
	return &approvalHandlerImpl{
		requestService:  requestService,
		workflowService: workflowService,
	}
}

// ManagerPending lists pending requests of direct reports, oldest first.
func (h *approvalHandlerImpl) ManagerPending(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}

	requests, err := h.requestService.ListPendingForManager(r.Context(), sc)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	results := absence.NewRequestResponses(requests)
	response.Success(w, absence.PendingListResponse{Count: len(results), Results: results})
}

// HRPending lists tenant-wide pending requests, newest first.
func (h *approvalHandlerImpl) HRPending(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}

	requests, err := h.requestService.ListPendingForHR(r.Context(), sc)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, absence.NewRequestResponses(requests))
}

// Detail implements ApprovalHandler.
func (h *approvalHandlerImpl) Detail(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	req, err := h.requestService.FetchDetail(r.Context(), sc, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, absence.NewRequestDetailResponse(req))
}

// ManagerDecide accepts only numeric actions.
func (h *approvalHandlerImpl) ManagerDecide(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false)
}

// HRDecide also accepts the Spanish action aliases.
func (h *approvalHandlerImpl) HRDecide(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true)
}

func (h *approvalHandlerImpl) decide(w http.ResponseWriter, r *http.Request, allowAliases bool) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req absence.DecideRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	action, err := absence.ParseAction(req.Action, allowAliases)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	decided, err := h.workflowService.Decide(r.Context(), sc, id, absence.DecideInput{
		Action:  action,
		Comment: req.Comment,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, absence.NewDecisionResponse(decided))
}

// Decisions lists the decision history visible to the actor.
func (h *approvalHandlerImpl) Decisions(w http.ResponseWriter, r *http.Request) {
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
