package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"finflow-backend/internal/api/middleware"
	"finflow-backend/internal/service"
	"finflow-backend/internal/util"
)

// TransactionHandler exposes the ledger engine over HTTP.
type TransactionHandler struct {
	service service.TransactionService
	logger  *zap.Logger
}

// NewTransactionHandler creates a TransactionHandler.
func NewTransactionHandler(svc service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{service: svc, logger: logger}
}

// CreateTransactionRequest is the body for POST /api/v1/transaction.
// Wallet ids are optional; amount accepts a decimal number or string.
type CreateTransactionRequest struct {
	FromWalletID *int64          `json:"from_wallet_id"`
	ToWalletID   *int64          `json:"to_wallet_id"`
	Amount       decimal.Decimal `json:"amount"`
}

// Create handles POST /api/v1/transaction. The authenticated principal is
// passed explicitly into the engine, which enforces source-side ownership.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrForbidden)
		return
	}

	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.FromWalletID != nil && *req.FromWalletID <= 0 {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.ToWalletID != nil && *req.ToWalletID <= 0 {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	transaction, err := h.service.CreateTransaction(r.Context(), principal, req.FromWalletID, req.ToWalletID, req.Amount)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, transaction)
}
