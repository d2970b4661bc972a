package repository

import (
	"context"
	"database/sql"
)

// DBExecutor is the subset of database operations the repositories need.
// Both *sqlx.DB and *sqlx.Tx implement it, so the same repository methods
// run on a direct connection or inside a transaction.
type DBExecutor interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
