// Package store provides SQLite-backed durable storage for the product ledger.
//
// The store owns a single table:
//   - products(id, name, price, quantity)
//
// # Critical Patterns
//
// Surrogate keys: id is INTEGER PRIMARY KEY AUTOINCREMENT, so an id is never
// reused after deletion, even across reopen.
//
// Outcome by rows affected: AdjustStock and Remove decide between
// OutcomeUpdated/OutcomeRemoved and OutcomeNotFound from RowsAffected, never
// from statement success alone.
//
// Deterministic reads: every multi-row query ends with ORDER BY id ASC.
//
// Initialization is all-or-nothing: a failure to open the file, apply
// pragmas, or create the schema returns ErrInit and no Store.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - a single open connection (single-user, single-writer)
package store
