package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/stockledger/internal/inventory"
)

// createTestStore creates a new file-backed store in a temp dir for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustAdd inserts a product and fails the test on error.
func mustAdd(t *testing.T, s *Store, name string, price float64, quantity int64) int64 {
	t.Helper()
	id, err := s.Add(context.Background(), name, price, quantity)
	require.NoError(t, err)
	return id
}

// productIDs extracts ids in result order.
func productIDs(products []inventory.Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
