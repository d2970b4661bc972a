package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a completed money movement.
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// ResolveTransactionType derives the type from which sides of the movement
// are present: no source is a deposit, no destination a withdrawal, both a
// transfer.
func ResolveTransactionType(fromWalletID, toWalletID *int64) TransactionType {
	switch {
	case fromWalletID != nil && toWalletID != nil:
		return TransactionTypeTransfer
	case fromWalletID == nil:
		return TransactionTypeDeposit
	default:
		return TransactionTypeWithdraw
	}
}

// Transaction is the immutable record of one completed balance movement.
// At most one of FromWalletID/ToWalletID is nil.
type Transaction struct {
	ID           int64           `db:"id" json:"id"`
	FromWalletID *int64          `db:"from_wallet_id" json:"from_wallet_id"`
	ToWalletID   *int64          `db:"to_wallet_id" json:"to_wallet_id"`
	Amount       decimal.Decimal `db:"amount" json:"amount"`
	Currency     string          `db:"currency" json:"currency"`
	Type         TransactionType `db:"type" json:"type"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// NewTransaction builds an unsaved transaction record; the store assigns ID
// and CreatedAt on append.
func NewTransaction(fromWalletID, toWalletID *int64, amount decimal.Decimal, currency string) *Transaction {
	return &Transaction{
		FromWalletID: fromWalletID,
		ToWalletID:   toWalletID,
		Amount:       amount,
		Currency:     currency,
		Type:         ResolveTransactionType(fromWalletID, toWalletID),
	}
}
