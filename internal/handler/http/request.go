package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// currentScope returns the scope resolved by middleware.ResolveScope.
func currentScope(w http.ResponseWriter, r *http.Request) (user.Scope, bool) {
	sc, err := user.ScopeFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return user.Scope{}, false
	}
	return sc, true
}

// idParam parses the {id} URL parameter.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "invalid id")
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Debug("request decode error", "path", r.URL.Path, "error", err)
		response.BadRequest(w, "Invalid request format")
		return false
	}
	return true
}

// boolQueryParam gets a bool query parameter with a default value
func boolQueryParam(r *http.Request, key string, defaultVal bool) bool {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	b, ok := validator.ParseBool(val)
	if !ok {
		return defaultVal
	}
	return b
}
