package harness

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/stockledger/internal/inventory"
	"github.com/roach88/stockledger/internal/store"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: %s: expected %s, got %s", e.Type, e.Expected, e.Actual)
}

// EvaluateAssertions checks every assertion against the store and returns
// one message per failure.
func EvaluateAssertions(ctx context.Context, st *store.Store, assertions []Assertion) []string {
	var msgs []string
	for _, a := range assertions {
		if err := evaluateAssertion(ctx, st, a); err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	return msgs
}

func evaluateAssertion(ctx context.Context, st *store.Store, a Assertion) error {
	switch a.Type {
	case AssertFinalQuantity:
		return assertFinalQuantity(ctx, st, a)
	case AssertAbsent:
		return assertAbsent(ctx, st, a)
	case AssertCount:
		return assertCount(ctx, st, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func assertFinalQuantity(ctx context.Context, st *store.Store, a Assertion) error {
	p, err := st.Get(ctx, a.ID)
	if errors.Is(err, inventory.ErrNotFound) {
		return &AssertionError{
			Type:     AssertFinalQuantity,
			Expected: fmt.Sprintf("product %d with quantity %d", a.ID, a.Quantity),
			Actual:   "no such product",
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", AssertFinalQuantity, err)
	}
	if p.Quantity != a.Quantity {
		return &AssertionError{
			Type:     AssertFinalQuantity,
			Expected: fmt.Sprintf("product %d with quantity %d", a.ID, a.Quantity),
			Actual:   fmt.Sprintf("quantity %d", p.Quantity),
		}
	}
	return nil
}

func assertAbsent(ctx context.Context, st *store.Store, a Assertion) error {
	p, err := st.Get(ctx, a.ID)
	if errors.Is(err, inventory.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", AssertAbsent, err)
	}
	return &AssertionError{
		Type:     AssertAbsent,
		Expected: fmt.Sprintf("product %d absent", a.ID),
		Actual:   fmt.Sprintf("product %d %q present", p.ID, p.Name),
	}
}

func assertCount(ctx context.Context, st *store.Store, a Assertion) error {
	products, err := st.List(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", AssertCount, err)
	}
	if len(products) != a.Count {
		return &AssertionError{
			Type:     AssertCount,
			Expected: fmt.Sprintf("%d products", a.Count),
			Actual:   fmt.Sprintf("%d products", len(products)),
		}
	}
	return nil
}
