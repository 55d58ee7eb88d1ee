package absence

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/validator"
)

var actionAliases = map[string]Action{
	"1":         ActionApprove,
	"aprobar":   ActionApprove,
	"aprobado":  ActionApprove,
	"aprobada":  ActionApprove,
	"2":         ActionReject,
	"rechazar":  ActionReject,
	"rechazado": ActionReject,
	"rechazada": ActionReject,
}

// ParseAction decodes the "accion" field of a decision body. Strict callers
// accept only the numbers 1 and 2; with allowAliases the string forms in
// actionAliases are accepted too.
func ParseAction(raw json.RawMessage, allowAliases bool) (Action, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, validator.Field("accion", "accion is required")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return 0, validator.Field("accion", "accion is invalid")
	}

	switch val := v.(type) {
	case json.Number:
		i, err := val.Int64()
		if err != nil || !Action(i).IsValid() {
			return 0, validator.Field("accion", "accion must be 1 (approve) or 2 (reject)")
		}
		return Action(i), nil
	case string:
		if !allowAliases {
			return 0, validator.Field("accion", "accion must be 1 (approve) or 2 (reject)")
		}
		key := strings.ToLower(strings.TrimSpace(val))
		if key == "" {
			return 0, validator.Field("accion", "accion is required")
		}
		if a, ok := actionAliases[key]; ok {
			return a, nil
		}
		return 0, validator.Field("accion", "accion must be one of: 1, 2, aprobar, rechazar")
	default:
		return 0, validator.Field("accion", "accion is invalid")
	}
}

// NormalizeComment maps a missing comment to the empty string and trims it.
func NormalizeComment(c *string) string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(*c)
}
