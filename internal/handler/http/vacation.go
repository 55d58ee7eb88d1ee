package http

import (
	"net/http"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/handler/http/response"
)

// VacationHandler serves the HR vacation balance ledger.
type VacationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	RenamePeriod(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
}

type vacationHandlerImpl struct {
	balanceService vacation.Service
}

func NewVacationHandler(balanceService vacation.Service) VacationHandler {
	return &vacationHandlerImpl{balanceService: balanceService}
}

// List implements VacationHandler.
func (h *vacationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}

	balances, err := h.balanceService.List(r.Context(), sc)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, vacation.NewBalanceResponses(balances))
}

// Create implements VacationHandler.
func (h *vacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}

	var req vacation.CreateBalanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.balanceService.Create(r.Context(), sc, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, vacation.NewBalanceResponse(created))
}

// RenamePeriod implements VacationHandler.
func (h *vacationHandlerImpl) RenamePeriod(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req vacation.RenamePeriodRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.balanceService.RenamePeriod(r.Context(), sc, id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, vacation.NewBalanceResponse(updated))
}

// Delete implements VacationHandler.
func (h *vacationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.balanceService.Delete(r.Context(), sc, id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

// ListEmployees implements VacationHandler.
func (h *vacationHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}

	employees, err := h.balanceService.ListEmployees(r.Context(), sc)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.NewEmployeeOptionResponses(employees))
}
