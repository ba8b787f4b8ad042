package adapters

import (
	"context"
	"database/sql"
	"errors"
)

// stdRows wraps sql.Rows to implement the DBRows interface.
type stdRows struct {
	rows *sql.Rows
}

func (s *stdRows) Next() bool {
	return s.rows.Next()
}

func (s *stdRows) Scan(dest ...any) error {
	return s.rows.Scan(dest...)
}

func (s *stdRows) Err() error {
	return s.rows.Err()
}

func (s *stdRows) Close() error {
	return s.rows.Close()
}

// stdResult wraps sql.Result to implement the DBResult interface.
type stdResult struct {
	result sql.Result
}

func (s *stdResult) RowsAffected() (int64, error) {
	return s.result.RowsAffected()
}

// stdExecer is the subset of sql.Tx and sqlx.Tx used for statements.
type stdExecer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// stdExecutor adapts a stdExecer to the DBExecutor interface.
type stdExecutor struct {
	execer stdExecer
}

func (s *stdExecutor) Exec(ctx context.Context, query string) (DBResult, error) {
	result, err := s.execer.ExecContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdResult{result: result}, nil
}

// stdTx is the subset of sql.Tx and sqlx.Tx needed to finish a transaction.
type stdTx interface {
	stdExecer
	Commit() error
	Rollback() error
}

func runInStdTx(tx stdTx, fn func(tx DBExecutor) error) error {
	if err := fn(&stdExecutor{execer: tx}); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return errors.Join(err, rollbackErr)
		}

		return err
	}

	return tx.Commit()
}
