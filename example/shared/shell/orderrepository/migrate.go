package orderrepository

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// MigrateResult describes what happened during migration.
type MigrateResult struct {
	Version uint
	Dirty   bool
	Changed bool
}

// Migrate creates or upgrades the orders schema for the given dialect.
func Migrate(db *sql.DB, dialect Dialect) (*MigrateResult, error) {
	driver, err := migrationDriver(db, dialect)
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(migrationsFS, "migrations/"+string(dialect))
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, string(dialect), driver)
	if err != nil {
		return nil, fmt.Errorf("migration instance: %w", err)
	}

	changed := true
	if err = m.Up(); errors.Is(err, migrate.ErrNoChange) {
		changed = false
	} else if err != nil {
		return nil, fmt.Errorf("migration up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return nil, fmt.Errorf("migration version: %w", err)
	}

	return &MigrateResult{Version: version, Dirty: dirty, Changed: changed}, nil
}

func migrationDriver(db *sql.DB, dialect Dialect) (database.Driver, error) {
	var (
		driver database.Driver
		err    error
	)

	switch dialect {
	case DialectPostgres:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	case DialectSQLite3:
		driver, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	default:
		return nil, ErrUnsupportedDialect
	}

	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	return driver, nil
}
