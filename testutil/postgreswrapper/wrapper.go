// Package postgreswrapper connects the order repository to the PostgreSQL test database
// through the adapter selected with the ADAPTER_TYPE environment variable.
package postgreswrapper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/config"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/orderrepository"
)

// Adapter type constants
const (
	typePGXPool = "pgxpool"
	typeSQLDB   = "sqldb"
	typeSQLX    = "sqlx"
)

// Wrapper abstracts over the different database adapters.
type Wrapper interface {
	Repository(t testing.TB, options ...orderrepository.Option) *orderrepository.Repository
	DB() *sql.DB
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing.
type PGXPoolWrapper struct {
	pool *pgxpool.Pool
	db   *sql.DB
}

func (w *PGXPoolWrapper) Repository(t testing.TB, options ...orderrepository.Option) *orderrepository.Repository {
	repo, err := orderrepository.NewRepositoryFromPGXPool(w.pool, options...)
	require.NoError(t, err)

	return repo
}

func (w *PGXPoolWrapper) DB() *sql.DB {
	return w.db
}

func (w *PGXPoolWrapper) Close() {
	_ = w.db.Close()
	w.pool.Close()
}

// SQLDBWrapper wraps sql.DB-based testing.
type SQLDBWrapper struct {
	db *sql.DB
}

func (w *SQLDBWrapper) Repository(t testing.TB, options ...orderrepository.Option) *orderrepository.Repository {
	repo, err := orderrepository.NewRepositoryFromSQLDB(w.db, orderrepository.DialectPostgres, options...)
	require.NoError(t, err)

	return repo
}

func (w *SQLDBWrapper) DB() *sql.DB {
	return w.db
}

func (w *SQLDBWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// SQLXWrapper wraps sqlx-based testing.
type SQLXWrapper struct {
	db *sqlx.DB
}

func (w *SQLXWrapper) Repository(t testing.TB, options ...orderrepository.Option) *orderrepository.Repository {
	repo, err := orderrepository.NewRepositoryFromSQLX(w.db, orderrepository.DialectPostgres, options...)
	require.NoError(t, err)

	return repo
}

func (w *SQLXWrapper) DB() *sql.DB {
	return w.db.DB
}

func (w *SQLXWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// CreateWrapperWithTestConfig creates the wrapper selected by ADAPTER_TYPE, migrates and truncates the test database.
// The test is skipped when the test database is not reachable.
func CreateWrapperWithTestConfig(t testing.TB) Wrapper {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wait := config.WaitConfig{MaxRetries: 1, InitialInterval: 100 * time.Millisecond, MaxInterval: 100 * time.Millisecond}
	dsn := config.PostgresTestDSN()

	var (
		wrapper Wrapper
		err     error
	)

	adapterTypeFromEnv := strings.ToLower(os.Getenv("ADAPTER_TYPE"))

	switch adapterTypeFromEnv {
	case typePGXPool, "":
		var pool *pgxpool.Pool
		if pool, err = config.PostgresPGXPool(ctx, dsn, wait); err == nil {
			wrapper = &PGXPoolWrapper{pool: pool, db: stdlib.OpenDBFromPool(pool)}
		}

	case typeSQLDB:
		var db *sql.DB
		if db, err = config.PostgresSQLDB(ctx, dsn, wait); err == nil {
			wrapper = &SQLDBWrapper{db: db}
		}

	case typeSQLX:
		var db *sqlx.DB
		if db, err = config.PostgresSQLX(ctx, dsn, wait); err == nil {
			wrapper = &SQLXWrapper{db: db}
		}

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", adapterTypeFromEnv))
	}

	if err != nil {
		t.Skipf("postgres test database not available: %v", err)
	}

	t.Cleanup(wrapper.Close)

	_, err = orderrepository.Migrate(wrapper.DB(), orderrepository.DialectPostgres)
	require.NoError(t, err)

	_, err = wrapper.DB().ExecContext(ctx, "TRUNCATE TABLE order_items, orders")
	require.NoError(t, err)

	return wrapper
}
