package employee

type EmployeeOptionResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombres"`
	LastName  string `json:"apellidos"`
	Email     string `json:"email"`
}

func NewEmployeeOptionResponse(e Employee) EmployeeOptionResponse {
	return EmployeeOptionResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
	}
}

func NewEmployeeOptionResponses(items []Employee) []EmployeeOptionResponse {
	out := make([]EmployeeOptionResponse, 0, len(items))
	for _, e := range items {
		out = append(out, NewEmployeeOptionResponse(e))
	}
	return out
}
