package repository

import (
	"context"

	"finflow-backend/internal/domain"
)

// TransactionRepository is the append-only transaction log. Stored records
// are never updated or deleted.
type TransactionRepository interface {
	// CreateTransaction appends the record, filling in its ID and CreatedAt.
	CreateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// GetTransactionsByWalletID returns a page of transactions touching the
	// wallet, newest first, plus the total count.
	GetTransactionsByWalletID(ctx context.Context, q DBExecutor, walletID int64, limit, offset int) ([]domain.Transaction, int64, error)
}
