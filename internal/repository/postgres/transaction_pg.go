package postgres

import (
	"context"
	"fmt"

	"finflow-backend/internal/domain"
	"finflow-backend/internal/repository"
)

// TransactionRepository implements repository.TransactionRepository for
// PostgreSQL. Inserts only; the transactions table has no update path.
type TransactionRepository struct{}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository() repository.TransactionRepository {
	return &TransactionRepository{}
}

// CreateTransaction appends a transaction record, letting the database
// assign id and created_at.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (from_wallet_id, to_wallet_id, amount, currency, type)
              VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := q.QueryRowContext(ctx, query,
		transaction.FromWalletID,
		transaction.ToWalletID,
		transaction.Amount,
		transaction.Currency,
		transaction.Type,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// GetTransactionsByWalletID returns a page of transactions where the wallet
// appears on either side, newest first, plus the total count.
func (r *TransactionRepository) GetTransactionsByWalletID(ctx context.Context, q repository.DBExecutor, walletID int64, limit, offset int) ([]domain.Transaction, int64, error) {
	transactions := []domain.Transaction{}
	query := `
		SELECT id, from_wallet_id, to_wallet_id, amount, currency, type, created_at
		FROM transactions
		WHERE from_wallet_id = $1 OR to_wallet_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	if err := q.SelectContext(ctx, &transactions, query, walletID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("fetch transactions for wallet %d: %w", walletID, err)
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM transactions WHERE from_wallet_id = $1 OR to_wallet_id = $1`
	if err := q.GetContext(ctx, &totalCount, countQuery, walletID); err != nil {
		return nil, 0, fmt.Errorf("count transactions for wallet %d: %w", walletID, err)
	}

	return transactions, totalCount, nil
}
