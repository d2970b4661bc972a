package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"finflow-backend/internal/domain"
)

// WalletRepository is the wallet store contract consumed by the ledger
// engine.
type WalletRepository interface {
	CreateWallet(ctx context.Context, q DBExecutor, wallet *domain.Wallet) error
	GetWalletByID(ctx context.Context, q DBExecutor, id int64) (*domain.Wallet, error)
	GetWalletByUserID(ctx context.Context, q DBExecutor, userID int64) (*domain.Wallet, error)
	// GetWalletByIDForUpdate takes an exclusive row lock on the wallet, so
	// concurrent exclusive acquisitions for the same id queue until the
	// surrounding unit of work ends. It must only be called with a
	// transaction-scoped executor.
	GetWalletByIDForUpdate(ctx context.Context, q DBExecutor, id int64) (*domain.Wallet, error)
	// UpdateWalletBalance applies a signed delta to the wallet balance and
	// bumps its version. Negative deltas are only valid for wallets the
	// caller holds the exclusive lock on.
	UpdateWalletBalance(ctx context.Context, q DBExecutor, walletID int64, delta decimal.Decimal) error
}
