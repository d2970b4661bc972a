package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"finflow-backend/internal/domain"
	"finflow-backend/internal/repository"
	"finflow-backend/internal/util"
)

// WalletRepository implements repository.WalletRepository for PostgreSQL.
type WalletRepository struct{}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository() repository.WalletRepository {
	return &WalletRepository{}
}

// CreateWallet inserts a new wallet row.
func (r *WalletRepository) CreateWallet(ctx context.Context, q repository.DBExecutor, wallet *domain.Wallet) error {
	query := `INSERT INTO wallets (user_id, currency, balance, version, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		wallet.UserID, wallet.Currency, wallet.Balance, wallet.Version, wallet.CreatedAt, wallet.UpdatedAt,
	).Scan(&wallet.ID)
	if err != nil {
		return fmt.Errorf("create wallet: %w", err)
	}
	return nil
}

const walletColumns = `id, user_id, currency, balance, version, created_at, updated_at`

// GetWalletByID retrieves a wallet by its ID.
func (r *WalletRepository) GetWalletByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Wallet, error) {
	var wallet domain.Wallet
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`
	if err := q.GetContext(ctx, &wallet, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrWalletNotFound
		}
		return nil, fmt.Errorf("get wallet %d: %w", id, err)
	}
	return &wallet, nil
}

// GetWalletByUserID retrieves the wallet owned by the given user.
func (r *WalletRepository) GetWalletByUserID(ctx context.Context, q repository.DBExecutor, userID int64) (*domain.Wallet, error) {
	var wallet domain.Wallet
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`
	if err := q.GetContext(ctx, &wallet, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrWalletNotFound
		}
		return nil, fmt.Errorf("get wallet for user %d: %w", userID, err)
	}
	return &wallet, nil
}

// GetWalletByIDForUpdate retrieves a wallet under an exclusive row lock.
// Concurrent callers for the same id block here until the holder's
// transaction commits or rolls back.
func (r *WalletRepository) GetWalletByIDForUpdate(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Wallet, error) {
	var wallet domain.Wallet
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`
	if err := q.GetContext(ctx, &wallet, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrWalletNotFound
		}
		return nil, fmt.Errorf("lock wallet %d: %w", id, err)
	}
	return &wallet, nil
}

// UpdateWalletBalance applies a signed delta to the wallet balance. The
// wallets table carries a balance >= 0 CHECK as a backstop; the engine
// validates sufficiency under the row lock before debiting.
func (r *WalletRepository) UpdateWalletBalance(ctx context.Context, q repository.DBExecutor, walletID int64, delta decimal.Decimal) error {
	query := `UPDATE wallets
              SET balance = balance + $1, version = version + 1, updated_at = NOW()
              WHERE id = $2`
	result, err := q.ExecContext(ctx, query, delta, walletID)
	if err != nil {
		return fmt.Errorf("update balance of wallet %d: %w", walletID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update balance of wallet %d: rows affected: %w", walletID, err)
	}
	if rowsAffected == 0 {
		return util.ErrWalletNotFound
	}
	return nil
}
