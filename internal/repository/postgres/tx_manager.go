package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"finflow-backend/internal/repository"
	"finflow-backend/internal/util"
)

// TxManager implements repository.TxManager on top of sqlx transactions.
type TxManager struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewTxManager creates a TxManager bound to the given connection pool.
func NewTxManager(db *sqlx.DB, log *zap.Logger) *TxManager {
	return &TxManager{db: db, log: log}
}

// WithinTx runs fn inside a database transaction. Any error from fn rolls
// everything back, so no partial state is ever observable. A context
// deadline hit while fn was waiting (typically on a wallet row lock) is
// reported as util.ErrTimeout.
func (m *TxManager) WithinTx(ctx context.Context, fn func(q repository.DBExecutor) error) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			m.log.Error("transaction rollback failed", zap.Error(rbErr))
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %v", util.ErrTimeout, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
