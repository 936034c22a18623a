package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/fintrack/internal/common"
)

// User-facing messages.
const (
	msgNoToken          = "Access denied. No token provided."
	msgInvalidToken     = "Invalid token."
	msgUserNotFound     = "Invalid token. User not found."
	msgEmailTaken       = "User with this email already exists"
	msgBadCredentials   = "Invalid email or password"
	msgTxNotFound       = "Transaction not found"
	msgServerError      = "Server error"
	msgExportDisabled   = "Statement export is not configured"
	maxRequestBodyBytes = 1 << 20
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// decodeJSON reads the request body into v. Any malformed body is reported
// with the generic missing-fields message.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, common.MsgFillAllFields)
		return false
	}
	return true
}

// writeServiceError maps a service error to its HTTP response. Unknown
// errors become 500 and are logged.
func (h *Handlers) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var ve *common.ValidationError

	switch {
	case errors.As(err, &ve):
		writeMessage(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, common.ErrorValidation):
		writeMessage(w, http.StatusBadRequest, common.MsgFillAllFields)
	case errors.Is(err, common.ErrorConflict):
		writeMessage(w, http.StatusBadRequest, msgEmailTaken)
	case errors.Is(err, common.ErrorUnauthorized):
		writeMessage(w, http.StatusUnauthorized, msgInvalidToken)
	case errors.Is(err, common.ErrorNotFound):
		writeMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, common.ErrorUnavailable):
		writeMessage(w, http.StatusServiceUnavailable, msgExportDisabled)
	default:
		h.logger.Error(ctx, "request failed", "error", err.Error(), "request_id", RequestIDFromContext(ctx))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: msgServerError, Error: err.Error()})
	}
}
