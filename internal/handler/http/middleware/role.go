package middleware

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/handler/http/response"
)

// RequirePermission checks if the resolved scope's role has a permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sc, err := user.ScopeFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !sc.Can(permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, sc.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
