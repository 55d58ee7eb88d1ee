package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// ResolveScope builds the actor scope from the verified claims and stores it
// in the request context.
func ResolveScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrInvalidToken)
			return
		}

		sc, err := user.ScopeFromClaims(claims)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(user.WithScope(r.Context(), sc)))
	})
}
