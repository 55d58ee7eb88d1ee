package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/validator"
)

const defaultMaxUploadBytes = 10 << 20

// AbsenceHandler serves employee self-service on absence requests.
type AbsenceHandler interface {
	ListTypes(w http.ResponseWriter, r *http.Request)

	Submit(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	GetOwn(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	UploadAttachment(w http.ResponseWriter, r *http.Request)
}

type absenceHandlerImpl struct {
	typeService    absence.TypeService
	requestService absence.RequestService
	maxUploadBytes int64
}

func NewAbsenceHandler(typeService absence.TypeService, requestService absence.RequestService, maxUploadBytes int64) AbsenceHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &absenceHandlerImpl{
		typeService:    typeService,
		requestService: requestService,
		maxUploadBytes: maxUploadBytes,
	}
}

// ListTypes implements AbsenceHandler.
func (h *absenceHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
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

// Submit implements AbsenceHandler.
func (h *absenceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}

	var req absence.SubmitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.requestService.Submit(r.Context(), sc, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, absence.NewRequestResponse(created))
}

// ListOwn implements AbsenceHandler.
func (h *absenceHandlerImpl) ListOwn(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}

	requests, err := h.requestService.ListOwn(r.Context(), sc)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, absence.NewRequestResponses(requests))
}

// GetOwn implements AbsenceHandler.
func (h *absenceHandlerImpl) GetOwn(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	req, err := h.requestService.GetOwn(r.Context(), sc, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, absence.NewRequestDetailResponse(req))
}

// Edit implements AbsenceHandler.
func (h *absenceHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req absence.EditRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.requestService.EditOwn(r.Context(), sc, id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, absence.NewRequestResponse(updated))
}

// Cancel implements AbsenceHandler.
func (h *absenceHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.requestService.Cancel(r.Context(), sc, id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

// UploadAttachment implements AbsenceHandler.
func (h *absenceHandlerImpl) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	sc, ok := currentScope(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.HandleError(w, validator.Field("file", "file exceeds the maximum upload size"))
			return
		}
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			response.HandleError(w, validator.Field("file", "file is required"))
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload")
		return
	}
	defer file.Close()

	updated, err := h.requestService.AttachSupport(r.Context(), sc, id, file, fileHeader.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, absence.NewRequestResponse(updated))
}
