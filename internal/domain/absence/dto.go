package absence

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/validator"
)

const (
	maxTypeNameLength = 150
	maxReasonLength   = 2000
)

// SubmitRequest is the body of a new absence request.
type SubmitRequest struct {
	AbsenceTypeID int64   `json:"id_tipo_ausencia"`
	StartDate     string  `json:"fecha_inicio"`
	EndDate       *string `json:"fecha_fin,omitempty"`
	Reason        string  `json:"motivo"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AbsenceTypeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id_tipo_ausencia",
			Message: "id_tipo_ausencia is required",
		})
	}

	errs = append(errs, validateDates(r.StartDate, r.EndDate)...)

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "motivo",
			Message: "motivo is required",
		})
	} else if validator.ExceedsLength(r.Reason, maxReasonLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "motivo",
			Message: "motivo must not exceed 2000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates returns the parsed start and end dates. Call after Validate.
func (r *SubmitRequest) Dates() (time.Time, *time.Time) {
	return parseDates(r.StartDate, r.EndDate)
}

// EditRequest replaces the editable fields of a pending request.
type EditRequest struct {
	AbsenceTypeID int64   `json:"id_tipo_ausencia"`
	StartDate     string  `json:"fecha_inicio"`
	EndDate       *string `json:"fecha_fin,omitempty"`
	Reason        string  `json:"motivo"`
}

func (r *EditRequest) Validate() error {
	s := SubmitRequest(*r)
	return s.Validate()
}

func (r *EditRequest) Dates() (time.Time, *time.Time) {
	return parseDates(r.StartDate, r.EndDate)
}

func validateDates(start string, end *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	startDate, ok := validator.IsValidDate(strings.TrimSpace(start))
	if validator.IsEmpty(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_inicio",
			Message: "fecha_inicio is required",
		})
	} else if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_inicio",
			Message: "fecha_inicio must be in YYYY-MM-DD format",
		})
	}

	if end != nil && !validator.IsEmpty(*end) {
		endDate, endOK := validator.IsValidDate(strings.TrimSpace(*end))
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "fecha_fin",
				Message: "fecha_fin must be in YYYY-MM-DD format",
			})
		} else if ok && endDate.Before(startDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "fecha_fin",
				Message: "fecha_fin cannot be before fecha_inicio",
			})
		}
	}
	return errs
}

func parseDates(start string, end *string) (time.Time, *time.Time) {
	startDate, _ := validator.ParseDate(start)
	if end == nil || validator.IsEmpty(*end) {
		return startDate, nil
	}
	endDate, _ := validator.ParseDate(*end)
	return startDate, &endDate
}

// DecideRequest is the body of a decision. Accion is kept raw because the HR
// path accepts string aliases.
type DecideRequest struct {
	Action  json.RawMessage `json:"accion"`
	Comment *string         `json:"comentario"`
}

type DecideInput struct {
	Action  Action
	Comment *string
}

type CreateTypeRequest struct {
	Name               string             `json:"nombre"`
	AffectsPay         validator.FlexBool `json:"afecta_sueldo"`
	RequiresSupportDoc validator.FlexBool `json:"requiere_soporte"`
}

func (r *CreateTypeRequest) Validate() error {
	var errs validator.ValidationErrors
	errs = append(errs, validateTypeName(r.Name)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTypeRequest struct {
	Name               *string             `json:"nombre,omitempty"`
	AffectsPay         *validator.FlexBool `json:"afecta_sueldo,omitempty"`
	RequiresSupportDoc *validator.FlexBool `json:"requiere_soporte,omitempty"`
}

func (r *UpdateTypeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name != nil {
		errs = append(errs, validateTypeName(*r.Name)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateTypeName(name string) validator.ValidationErrors {
	if validator.IsEmpty(name) {
		return validator.Field("nombre", "nombre is required")
	}
	if validator.ExceedsLength(strings.TrimSpace(name), maxTypeNameLength) {
		return validator.Field("nombre", "nombre must not exceed 150 characters")
	}
	return nil
}

// Responses

type TypeResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"nombre"`
	AffectsPay         bool   `json:"afecta_sueldo"`
	RequiresSupportDoc bool   `json:"requiere_soporte"`
}

func NewTypeResponse(t AbsenceType) TypeResponse {
	return TypeResponse{
		ID:                 t.ID,
		Name:               t.Name,
		AffectsPay:         t.AffectsPay,
		RequiresSupportDoc: t.RequiresSupportDoc,
	}
}

func NewTypeResponses(items []AbsenceType) []TypeResponse {
	out := make([]TypeResponse, 0, len(items))
	for _, t := range items {
		out = append(out, NewTypeResponse(t))
	}
	return out
}

type RequestResponse struct {
	ID                int64     `json:"id"`
	EmployeeID        int64     `json:"empleado_id"`
	EmployeeFirstName string    `json:"empleado_nombres"`
	EmployeeLastName  string    `json:"empleado_apellidos"`
	EmployeeEmail     string    `json:"empleado_email"`
	AbsenceTypeID     int64     `json:"id_tipo_ausencia"`
	AbsenceTypeName   string    `json:"tipo_ausencia"`
	StartDate         string    `json:"fecha_inicio"`
	EndDate           *string   `json:"fecha_fin"`
	BusinessDays      int       `json:"dias_habiles"`
	Reason            string    `json:"motivo"`
	Status            Status    `json:"estado"`
	StatusLabel       string    `json:"estado_label"`
	CurrentStep       int       `json:"flujo_actual"`
	AttachmentURL     *string   `json:"adjunto_url"`
	CreatedAt         time.Time `json:"creada_el"`
}

func NewRequestResponse(r AbsenceRequest) RequestResponse {
	var end *string
	if r.EndDate != nil {
		s := r.EndDate.Format(validator.DateLayout)
		end = &s
	}
	return RequestResponse{
		ID:                r.ID,
		EmployeeID:        r.EmployeeID,
		EmployeeFirstName: r.Employee.FirstName,
		EmployeeLastName:  r.Employee.LastName,
		EmployeeEmail:     r.Employee.Email,
		AbsenceTypeID:     r.AbsenceTypeID,
		AbsenceTypeName:   r.AbsenceTypeName,
		StartDate:         r.StartDate.Format(validator.DateLayout),
		EndDate:           end,
		BusinessDays:      r.BusinessDays,
		Reason:            r.Reason,
		Status:            r.Status,
		StatusLabel:       r.Status.Label(),
		CurrentStep:       r.CurrentStep,
		AttachmentURL:     r.AttachmentURL,
		CreatedAt:         r.CreatedAt,
	}
}

func NewRequestResponses(items []AbsenceRequest) []RequestResponse {
	out := make([]RequestResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewRequestResponse(r))
	}
	return out
}

type CalendarResponse struct {
	Start string `json:"inicio"`
	End   string `json:"fin"`
}

type RequestDetailResponse struct {
	RequestResponse
	ManagerID *int64           `json:"manager_id"`
	Calendar  CalendarResponse `json:"calendario"`
}

func NewRequestDetailResponse(r AbsenceRequest) RequestDetailResponse {
	return RequestDetailResponse{
		RequestResponse: NewRequestResponse(r),
		ManagerID:       r.Employee.ManagerID,
		Calendar: CalendarResponse{
			Start: r.StartDate.Format(validator.DateLayout),
			End:   r.EffectiveEndDate().Format(validator.DateLayout),
		},
	}
}

type PendingListResponse struct {
	Count   int               `json:"count"`
	Results []RequestResponse `json:"results"`
}

type DecisionResponse struct {
	OK          bool   `json:"ok"`
	RequestID   int64  `json:"solicitud_id"`
	Status      Status `json:"estado"`
	StatusLabel string `json:"estado_label"`
}

func NewDecisionResponse(r AbsenceRequest) DecisionResponse {
	return DecisionResponse{
		OK:          true,
		RequestID:   r.ID,
		Status:      r.Status,
		StatusLabel: r.Status.Label(),
	}
}

type ApprovalResponse struct {
	ID                int64     `json:"id"`
	RequestID         int64     `json:"solicitud_id"`
	ApproverUserID    int64     `json:"aprobador_id"`
	Action            Action    `json:"accion"`
	ActionLabel       string    `json:"accion_label"`
	Comment           string    `json:"comentario"`
	DecidedAt         time.Time `json:"fecha"`
	EmployeeID        int64     `json:"empleado_id"`
	EmployeeFirstName string    `json:"empleado_nombres"`
	EmployeeLastName  string    `json:"empleado_apellidos"`
	AbsenceTypeName   string    `json:"tipo_ausencia"`
	StartDate         string    `json:"fecha_inicio"`
	EndDate           string    `json:"fecha_fin"`
}

func NewApprovalResponse(d ApprovalDecision) ApprovalResponse {
	comment := d.Comment
	if strings.TrimSpace(comment) == "" {
		comment = "N/A"
	}
	return ApprovalResponse{
		ID:                d.ID,
		RequestID:         d.RequestID,
		ApproverUserID:    d.ApproverUserID,
		Action:            d.Action,
		ActionLabel:       d.Action.Label(),
		Comment:           comment,
		DecidedAt:         d.DecidedAt,
		EmployeeID:        d.Request.EmployeeID,
		EmployeeFirstName: d.Request.Employee.FirstName,
		EmployeeLastName:  d.Request.Employee.LastName,
		AbsenceTypeName:   d.Request.AbsenceTypeName,
		StartDate:         d.Request.StartDate.Format(validator.DateLayout),
		EndDate:           d.Request.EffectiveEndDate().Format(validator.DateLayout),
	}
}

func NewApprovalResponses(items []ApprovalDecision) []ApprovalResponse {
	out := make([]ApprovalResponse, 0, len(items))
	for _, d := range items {
		out = append(out, NewApprovalResponse(d))
	}
	return out
}
