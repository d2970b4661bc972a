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

// TransactionService is the ledger engine: it validates a requested money
// movement, serializes concurrent mutations per source wallet, mutates
// balances and appends the transaction record atomically.
type TransactionService interface {
	// CreateTransaction moves amount from fromWalletID to toWalletID on
	// behalf of the authenticated principal. Either wallet id may be nil
	// (deposit / withdrawal) but not both. It returns the stored record.
	CreateTransaction(ctx context.Context, principalUserID int64, fromWalletID, toWalletID *int64, amount decimal.Decimal) (*domain.Transaction, error)
}

type transactionService struct {
	txManager       repository.TxManager
	walletRepo      repository.WalletRepository
	transactionRepo repository.TransactionRepository
	log             *zap.Logger
}

// NewTransactionService creates the ledger engine.
func NewTransactionService(
	txManager repository.TxManager,
	walletRepo repository.WalletRepository,
	transactionRepo repository.TransactionRepository,
	log *zap.Logger,
) TransactionService {
	return &transactionService{
		txManager:       txManager,
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		log:             log,
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, principalUserID int64, fromWalletID, toWalletID *int64, amount decimal.Decimal) (*domain.Transaction, error) {
	// Fail fast on malformed input before opening any unit of work.
	if fromWalletID == nil && toWalletID == nil {
		return nil, fmt.Errorf("%w: both wallets cannot be null", util.ErrInvalidInput)
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if fromWalletID != nil && toWalletID != nil && *fromWalletID == *toWalletID {
		return nil, fmt.Errorf("%w: cannot transfer to the same wallet", util.ErrInvalidInput)
	}

	var transaction *domain.Transaction
	err := s.txManager.WithinTx(ctx, func(q repository.DBExecutor) error {
		var fromWallet, toWallet *domain.Wallet

		if fromWalletID != nil {
			// The exclusive lock serializes debits per wallet: ownership
			// and sufficiency are checked against the locked balance, never
			// a stale read.
			wallet, err := s.walletRepo.GetWalletByIDForUpdate(ctx, q, *fromWalletID)
			if err != nil {
				return fmt.Errorf("from wallet: %w", err)
			}
			if wallet.UserID != principalUserID {
				return fmt.Errorf("%w: wallet %d does not belong to user %d", util.ErrForbidden, wallet.ID, principalUserID)
			}
			if wallet.Balance.LessThan(amount) {
				return util.ErrInsufficientFunds
			}
			if err := s.walletRepo.UpdateWalletBalance(ctx, q, wallet.ID, amount.Neg()); err != nil {
				return err
			}
			fromWallet = wallet
		}

		if toWalletID != nil {
			// Credits cannot underflow, so the destination needs no
			// exclusive read; its write still belongs to this unit of work.
			wallet, err := s.walletRepo.GetWalletByID(ctx, q, *toWalletID)
			if err != nil {
				return fmt.Errorf("to wallet: %w", err)
			}
			if err := s.walletRepo.UpdateWalletBalance(ctx, q, wallet.ID, amount); err != nil {
				return err
			}
			toWallet = wallet
		}

		currency := resolveCurrency(fromWallet, toWallet)
		transaction = domain.NewTransaction(fromWalletID, toWalletID, amount, currency)
		return s.transactionRepo.CreateTransaction(ctx, q, transaction)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("transaction completed",
		zap.Int64("transaction_id", transaction.ID),
		zap.String("type", string(transaction.Type)),
		zap.String("amount", amount.String()),
	)
	return transaction, nil
}

// resolveCurrency copies the currency from whichever wallet participates,
// source first. No conversion happens anywhere in the ledger.
func resolveCurrency(fromWallet, toWallet *domain.Wallet) string {
	if fromWallet != nil {
		return fromWallet.Currency
	}
	return toWallet.Currency
}

// validateAmount enforces a positive amount with at most two decimal
// places (minimum increment 0.01).
func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", util.ErrInvalidInput)
	}
	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: amount precision is limited to 0.01", util.ErrInvalidInput)
	}
	return nil
}
