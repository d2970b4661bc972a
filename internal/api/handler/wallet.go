package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"finflow-backend/internal/api/middleware"
	"finflow-backend/internal/api/types"
	"finflow-backend/internal/domain"
	"finflow-backend/internal/service"
	"finflow-backend/internal/util"
)

// WalletHandler handles wallet reads and top-ups.
type WalletHandler struct {
	service service.WalletService
	logger  *zap.Logger
}

// NewWalletHandler creates a WalletHandler.
func NewWalletHandler(svc service.WalletService, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{service: svc, logger: logger}
}

// GetMyWallet handles GET /api/v1/wallet.
func (h *WalletHandler) GetMyWallet(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrForbidden)
		return
	}

	wallet, err := h.service.GetWalletByUserID(r.Context(), principal)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, wallet)
}

// TopUpRequest is the body for POST /api/v1/wallet/topup.
type TopUpRequest struct {
	WalletID int64           `json:"wallet_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// TopUp handles POST /api/v1/wallet/topup.
func (h *WalletHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	var req TopUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.WalletID <= 0 {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	wallet, err := h.service.TopUp(r.Context(), req.WalletID, req.Amount)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, wallet)
}

// GetTransactionHistory handles GET /api/v1/wallet/{walletID}/transactions.
func (h *WalletHandler) GetTransactionHistory(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrForbidden)
		return
	}

	walletID, err := strconv.ParseInt(chi.URLParam(r, "walletID"), 10, 64)
	if err != nil || walletID <= 0 {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 10
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	transactions, totalCount, err := h.service.GetTransactionHistory(r.Context(), principal, walletID, limit, offset)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.PaginatedResponse[domain.Transaction]{
		Data:       transactions,
		Limit:      limit,
		Offset:     offset,
		TotalCount: totalCount,
	})
}
