package config

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

// SQLiteSQLDB opens a *sql.DB for the given SQLite DSN.
//
// The pool is limited to one connection, because every connection
// of an in-memory database would otherwise see its own database.
func SQLiteSQLDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
