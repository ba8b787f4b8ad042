// Package adapters hides the differences between pgxpool.Pool, sql.DB and sqlx.DB
// behind the small set of operations the order repository needs.
package adapters
