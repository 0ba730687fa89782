package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goliatone/go-formdesigner/pkg/designer"
	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/forms"
	"github.com/goliatone/go-formdesigner/pkg/placement"
)

// UserHeader carries the opaque id of the acting user.
const UserHeader = "X-User-ID"

// maxBodyBytes bounds JSON and form bodies.
const maxBodyBytes = 1 << 20

// errorBody is the JSON error envelope.
type errorBody struct {
	Error      string              `json:"error"`
	Code       string              `json:"code"`
	Violations []element.Violation `json:"violations,omitempty"`
	Invalid    []string            `json:"invalid,omitempty"`
}

// writeJSON marshals v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Warn("httpapi: encode response", "error", err)
	}
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: message, Code: code})
}

// decodeJSON decodes the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	defer r.Body.Close()
	if err := requireJSON(r); err != nil {
		return err
	}
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// userID returns the acting user, or "" for anonymous requests.
func userID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(UserHeader))
}

// statusOf maps domain errors onto HTTP statuses and error codes.
func statusOf(err error) (int, string) {
	var attrErr *element.AttributeError
	var consistency *placement.ConsistencyError
	switch {
	case errors.Is(err, forms.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, forms.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, forms.ErrNotFound), errors.Is(err, designer.ErrElementNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, forms.ErrInvalidName):
		return http.StatusBadRequest, "INVALID_NAME"
	case errors.Is(err, forms.ErrInvalidContent):
		return http.StatusBadRequest, "INVALID_CONTENT"
	case errors.Is(err, forms.ErrEmptyForm):
		return http.StatusBadRequest, "EMPTY_FORM"
	case errors.As(err, &attrErr):
		return http.StatusBadRequest, "INVALID_ATTRIBUTES"
	case errors.Is(err, forms.ErrNotPublished):
		return http.StatusConflict, "NOT_PUBLISHED"
	case errors.Is(err, forms.ErrDuplicateName):
		return http.StatusConflict, "DUPLICATE_NAME"
	case errors.As(err, &consistency):
		return http.StatusConflict, "STALE_ELEMENT"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

// writeDomainError maps err and writes it. Unexpected errors are logged and
// hidden from the client.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusOf(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed", "error", err)
		writeError(w, status, code, "internal error")
		return
	}
	body := errorBody{Error: err.Error(), Code: code}
	var attrErr *element.AttributeError
	if errors.As(err, &attrErr) {
		body.Violations = attrErr.Violations
	}
	writeJSON(w, status, body)
}
