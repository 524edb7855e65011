package inventory

import "errors"

var (
	// ErrNotFound is returned when a product ID matches no row.
	ErrNotFound = errors.New("product not found")

	// ErrEmptyName is returned when a product name is empty after normalization.
	ErrEmptyName = errors.New("product name must not be empty")
)
