package repository

import "context"

// TxManager runs a function inside one atomic unit of work. The executor
// passed to fn is transaction-scoped: row locks taken through it are held
// until WithinTx returns, and every write through it commits or rolls back
// as a whole.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(q DBExecutor) error) error
}
