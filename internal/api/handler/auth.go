package handler

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"finflow-backend/internal/service"
	"finflow-backend/internal/util"
)

const minPasswordLength = 8

// AuthHandler handles registration and login.
type AuthHandler struct {
	service service.AuthService
	logger  *zap.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: svc, logger: logger}
}

// CredentialsRequest is the body for both register and login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *CredentialsRequest) validate() error {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return util.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return util.ErrInvalidInput
	}
	if len(req.Password) < minPasswordLength {
		return util.ErrInvalidInput
	}
	return nil
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if err := req.validate(); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	result, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, result)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Email == "" || req.Password == "" {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, result)
}
