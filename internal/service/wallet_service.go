package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"finflow-backend/internal/domain"
	"finflow-backend/internal/repository"
	"finflow-backend/internal/util"
)

// WalletService exposes wallet reads and the simplified top-up path.
type WalletService interface {
	GetWalletByUserID(ctx context.Context, userID int64) (*domain.Wallet, error)
	// TopUp deposits amount into the wallet and returns it with the new
	// balance. Like any deposit it carries no ownership check: ownership is
	// enforced on the source side only, and a top-up has no source.
	TopUp(ctx context.Context, walletID int64, amount decimal.Decimal) (*domain.Wallet, error)
	// GetTransactionHistory returns a page of the wallet's transactions,
	// newest first. Only the wallet's owner may read it.
	GetTransactionHistory(ctx context.Context, principalUserID, walletID int64, limit, offset int) ([]domain.Transaction, int64, error)
}

type walletService struct {
	dbExecutor      repository.DBExecutor
	walletRepo      repository.WalletRepository
	transactionRepo repository.TransactionRepository
	transactions    TransactionService
	log             *zap.Logger
}

// NewWalletService creates a WalletService. Top-ups are routed through the
// ledger engine so they are recorded like every other movement.
func NewWalletService(
	dbExecutor repository.DBExecutor,
	walletRepo repository.WalletRepository,
	transactionRepo repository.TransactionRepository,
	transactions TransactionService,
	log *zap.Logger,
) WalletService {
	return &walletService{
		dbExecutor:      dbExecutor,
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		transactions:    transactions,
		log:             log,
	}
}

func (s *walletService) GetWalletByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetWalletByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallet for user %d: %w", userID, err)
	}
	return wallet, nil
}

func (s *walletService) TopUp(ctx context.Context, walletID int64, amount decimal.Decimal) (*domain.Wallet, error) {
	// A top-up is a DEPOSIT with no source wallet; the principal is not
	// consulted on the destination side.
	_, err := s.transactions.CreateTransaction(ctx, 0, nil, &walletID, amount)
	if err != nil {
		return nil, err
	}

	wallet, err := s.walletRepo.GetWalletByID(ctx, s.dbExecutor, walletID)
	if err != nil {
		return nil, fmt.Errorf("re-fetch wallet %d after top-up: %w", walletID, err)
	}

	s.log.Info("wallet topped up",
		zap.Int64("wallet_id", walletID),
		zap.String("amount", amount.String()),
	)
	return wallet, nil
}

func (s *walletService) GetTransactionHistory(ctx context.Context, principalUserID, walletID int64, limit, offset int) ([]domain.Transaction, int64, error) {
	wallet, err := s.walletRepo.GetWalletByID(ctx, s.dbExecutor, walletID)
	if err != nil {
		return nil, 0, fmt.Errorf("get wallet %d: %w", walletID, err)
	}
	if wallet.UserID != principalUserID {
		return nil, 0, fmt.Errorf("%w: wallet %d does not belong to user %d", util.ErrForbidden, walletID, principalUserID)
	}

	transactions, totalCount, err := s.transactionRepo.GetTransactionsByWalletID(ctx, s.dbExecutor, walletID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("transaction history for wallet %d: %w", walletID, err)
	}
	return transactions, totalCount, nil
}
