package user

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
)

// Scope identifies who is acting and within which tenant. It is resolved once
// per request from the access token and passed explicitly to services.
type Scope struct {
	TenantID   int64
	ActorID    int64
	Role       Role
	EmployeeID int64 // zero when the role does not require an employee
}

func (s Scope) HasEmployee() bool {
	return s.EmployeeID > 0
}

func (s Scope) Can(p Permission) bool {
	return HasPermission(s.Role, p)
}

// ScopeFromClaims builds a Scope from verified token claims.
func ScopeFromClaims(claims map[string]interface{}) (Scope, error) {
	role := Role(strings.TrimSpace(stringClaim(claims["role"])))
	if !role.IsValid() {
		return Scope{}, ErrRoleRequired
	}

	actorID, ok := int64Claim(claims["user_id"])
	if !ok || actorID <= 0 {
		return Scope{}, ErrActorRequired
	}

	tenantID, ok := int64Claim(claims["tenant_id"])
	if !ok || tenantID <= 0 {
		return Scope{}, ErrTenantRequired
	}

	employeeID, ok := int64Claim(claims["employee_id"])
	if !ok || employeeID <= 0 {
		if role.RequiresEmployee() {
			return Scope{}, ErrEmployeeRequired
		}
		employeeID = 0
	}

	return Scope{
		TenantID:   tenantID,
		ActorID:    actorID,
		Role:       role,
		EmployeeID: employeeID,
	}, nil
}

type scopeKey struct{}

func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

func ScopeFromContext(ctx context.Context) (Scope, error) {
	s, ok := ctx.Value(scopeKey{}).(Scope)
	if !ok {
		return Scope{}, ErrScopeMissing
	}
	return s, nil
}

func stringClaim(v interface{}) string {
	s, _ := v.(string)
	return s
}

// int64Claim reads a numeric claim. JSON numbers decode as float64; string
// encoded ids are accepted as well.
func int64Claim(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	}
	return 0, false
}
