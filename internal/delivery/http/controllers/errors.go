package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"civitas/internal/delivery/http/helpers"
	"civitas/internal/domain"
)

// writeServiceError maps a service error onto the response envelope. Anything
// that is not a domain sentinel is logged and answered with 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, resource string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, detail(err, domain.ErrInvalidInput))
	case errors.Is(err, domain.ErrNoOp):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeNoChanges, domain.ErrNoOp.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, resource+" not found")
	case errors.Is(err, domain.ErrAlreadyJoined):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, domain.ErrAlreadyJoined.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
	}
}

// detail strips the sentinel prefix from a wrapped error message.
func detail(err, sentinel error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return rest
	}
	return msg
}

// MessageResponse is returned by mutations that only need to acknowledge the request.
type MessageResponse struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

// MessageSuccessResponse is the success envelope carrying a MessageResponse.
type MessageSuccessResponse struct {
	Data  MessageResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}
