// Package registercustomer implements the Register Customer use case.
//
// It follows the Load-Decide-Save-Notify pattern with proper separation between
// infrastructure concerns (CommandHandler) and pure business logic (Decide function).
//
// The business logic ensures idempotency - attempting to register a customer that
// already exists will result in a no-op (no event notified).
package registercustomer
