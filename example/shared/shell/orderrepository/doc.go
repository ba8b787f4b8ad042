// Package orderrepository persists orders with their items in PostgreSQL or SQLite
// and announces successful writes as domain events.
//
// SQL is built with goqu and executed through one of three database adapters:
// pgxpool.Pool (PostgreSQL), sql.DB (PostgreSQL or SQLite) and sqlx.DB (PostgreSQL or SQLite).
// When a dispatcher is configured with WithDispatcher, Create notifies core.OrderCreated and
// Update notifies core.OrderUpdated after the transaction was committed.
//
// This package is part of the shell (infrastructure) layer.
package orderrepository
