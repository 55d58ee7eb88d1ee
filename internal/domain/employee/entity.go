package employee

import "strings"

type Employee struct {
	ID        int64
	TenantID  int64
	ManagerID *int64
	FirstName string
	LastName  string
	Email     string
}

// FullName joins first and last name, falling back to fallback when both are blank.
func FullName(first, last, fallback string) string {
	full := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if full == "" {
		return fallback
	}
	return full
}

func (e Employee) FullName() string {
	return FullName(e.FirstName, e.LastName, "")
}
