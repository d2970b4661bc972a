package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"finflow-backend/internal/api/types"
	"finflow-backend/internal/util"
)

// DefaultTimeout bounds request handling, including time spent waiting on
// wallet row locks.
const DefaultTimeout = 15 * time.Second

func respondWithJSON(w http.ResponseWriter, log *zap.Logger, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error("failed to marshal JSON response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps the service error taxonomy onto HTTP status codes.
// Unrecognized errors are logged in full and surfaced generically.
func respondWithError(w http.ResponseWriter, log *zap.Logger, err error) {
	statusCode := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput),
		util.IsError(err, util.ErrInsufficientFunds),
		util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrForbidden):
		statusCode = http.StatusForbidden
		message = err.Error()
	case util.IsError(err, util.ErrNotFound),
		util.IsError(err, util.ErrWalletNotFound),
		util.IsError(err, util.ErrUserNotFound):
		statusCode = http.StatusNotFound
		message = err.Error()
	case util.IsError(err, util.ErrUserAlreadyExists):
		statusCode = http.StatusConflict
		message = err.Error()
	case util.IsError(err, util.ErrTimeout):
		statusCode = http.StatusServiceUnavailable
		message = "operation timed out, retry later"
	default:
		log.Error("unhandled service error", zap.Error(err))
	}

	respondWithJSON(w, log, statusCode, types.ErrorResponse{Error: message})
}
