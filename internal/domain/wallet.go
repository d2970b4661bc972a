package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is assigned to the wallet created at registration.
const DefaultCurrency = "USD"

// Wallet holds a single user's balance in one currency. Balance is never
// negative; Version increments on every balance change and only the ledger
// engine mutates either.
type Wallet struct {
	ID        int64           `db:"id" json:"id"`
	UserID    int64           `db:"user_id" json:"user_id"`
	Currency  string          `db:"currency" json:"currency"`
	Balance   decimal.Decimal `db:"balance" json:"balance"`
	Version   int64           `db:"version" json:"version"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// NewWallet creates a zero-balance wallet for the given owner.
func NewWallet(userID int64, currency string) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		UserID:    userID,
		Currency:  currency,
		Balance:   decimal.Zero,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
