package handler

import (
	"net/http"

	"go.uber.org/zap"

	"finflow-backend/internal/service"
)

// UserHandler exposes user lookups.
type UserHandler struct {
	service service.UserService
	logger  *zap.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{service: svc, logger: logger}
}

// GetAll handles GET /api/v1/user/all. Password hashes are never
// serialized.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, users)
}
