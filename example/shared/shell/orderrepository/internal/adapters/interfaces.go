package adapters

import "context"

// DBAdapter defines the database operations needed by the order repository.
// Queries are complete SQL strings with interpolated values.
// Statements only run inside WithinTx, every write of the repository spans several tables.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)

	// WithinTx runs fn inside a transaction which is committed if fn returns nil and rolled back otherwise.
	WithinTx(ctx context.Context, fn func(tx DBExecutor) error) error
}

// DBExecutor executes statements inside a transaction.
type DBExecutor interface {
	Exec(ctx context.Context, query string) (DBResult, error)
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}
