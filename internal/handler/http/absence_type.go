package http

import (
	"net/http"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/handler/http/response"
)

// AbsenceTypeHandler serves the HR absence type catalog.
type AbsenceTypeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type absenceTypeHandlerImpl struct {
	typeService absence.TypeService
}

func NewAbsenceTypeHandler(typeService absence.TypeService) AbsenceTypeHandler {
	return &absenceTypeHandlerImpl{typeService: typeService}
}

// List implements AbsenceTypeHandler.
func (h *absenceTypeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}

	types, err := h.typeService.List(r.Context(), sc)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, absence.NewTypeResponses(types))
}

// Create implements AbsenceTypeHandler.
func (h *absenceTypeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}

	var req absence.CreateTypeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.typeService.Create(r.Context(), sc, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, absence.NewTypeResponse(created))
}

// Get implements AbsenceTypeHandler.
func (h *absenceTypeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	t, err := h.typeService.Get(r.Context(), sc, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, absence.NewTypeResponse(t))
}

// Update implements AbsenceTypeHandler.
func (h *absenceTypeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req absence.UpdateTypeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.typeService.Update(r.Context(), sc, id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, absence.NewTypeResponse(updated))
}

// Delete implements AbsenceTypeHandler.
func (h *absenceTypeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.typeService.Delete(r.Context(), sc, id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}
