package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/stockledger/internal/inventory"
)

// Add inserts a new product and returns the id assigned by the store.
//
// The name is normalized with inventory.NormalizeName; an empty result returns
// inventory.ErrEmptyName without touching the database. Price and quantity are
// stored as given.
func (s *Store) Add(ctx context.Context, name string, price float64, quantity int64) (int64, error) {
	name = inventory.NormalizeName(name)
	if name == "" {
		return 0, fmt.Errorf("add product: %w", inventory.ErrEmptyName)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO products (name, price, quantity)
		VALUES (?, ?, ?)
	`, name, price, quantity)
	if err != nil {
		return 0, fmt.Errorf("add product: %w: %w", ErrStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add product: last insert id: %w: %w", ErrStatement, err)
	}

	return id, nil
}

// AdjustStock applies quantity = quantity + delta to the product with the
// given id in a single statement. delta may be negative and the result is not
// clamped at zero.
//
// Returns OutcomeUpdated when a row changed, OutcomeNotFound when no row has
// that id, and OutcomeFailed with an error wrapping ErrStatement otherwise.
func (s *Store) AdjustStock(ctx context.Context, id, delta int64) (inventory.Outcome, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE products SET quantity = quantity + ? WHERE id = ?
	`, delta, id)
	if err != nil {
		return inventory.OutcomeFailed, fmt.Errorf("adjust stock %d: %w: %w", id, ErrStatement, err)
	}

	return affectedOutcome(result, inventory.OutcomeUpdated, "adjust stock", id)
}

// Remove hard-deletes the product with the given id.
//
// Returns OutcomeRemoved, OutcomeNotFound, or OutcomeFailed with an error
// wrapping ErrStatement.
func (s *Store) Remove(ctx context.Context, id int64) (inventory.Outcome, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM products WHERE id = ?
	`, id)
	if err != nil {
		return inventory.OutcomeFailed, fmt.Errorf("remove product %d: %w: %w", id, ErrStatement, err)
	}

	return affectedOutcome(result, inventory.OutcomeRemoved, "remove product", id)
}

// affectedOutcome maps the rows affected by a single-row write to an outcome.
func affectedOutcome(result sql.Result, changed inventory.Outcome, op string, id int64) (inventory.Outcome, error) {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return inventory.OutcomeFailed, fmt.Errorf("%s %d: rows affected: %w: %w", op, id, ErrStatement, err)
	}
	if rowsAffected == 0 {
		return inventory.OutcomeNotFound, nil
	}
	return changed, nil
}
