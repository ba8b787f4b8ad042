// Package config provides configuration helpers for the example: Checkout in an online shop.
//
// It loads the application configuration from YAML, creates database connections
// for the supported drivers (pgx.Pool, sql.DB, sqlx.DB for PostgreSQL and sql.DB for SQLite),
// waits for the database with exponential backoff, and sets up OpenTelemetry providers.
//
// This package is part of the shell (infrastructure) layer.
package config
