package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database handle a store executes against. Both *sql.DB
// and *sql.Tx satisfy it, so the same store implementation serves standalone
// queries and the transactional reads inside an assessment computation.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
