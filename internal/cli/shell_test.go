package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/stockledger/internal/inventory"
	"github.com/roach88/stockledger/internal/store"
)

var errDisk = fmt.Errorf("%w: disk I/O error", store.ErrStatement)

// failingLedger fails every operation with a statement error.
type failingLedger struct {
	addCalls int
}

func (l *failingLedger) Add(context.Context, string, float64, int64) (int64, error) {
	l.addCalls++
	return 0, errDisk
}

func (l *failingLedger) AdjustStock(context.Context, int64, int64) (inventory.Outcome, error) {
	return inventory.OutcomeFailed, errDisk
}

func (l *failingLedger) Remove(context.Context, int64) (inventory.Outcome, error) {
	return inventory.OutcomeFailed, errDisk
}

func (l *failingLedger) List(context.Context) ([]inventory.Product, error) {
	return nil, errDisk
}

func (l *failingLedger) Search(context.Context, string) ([]inventory.Product, error) {
	return nil, errDisk
}

func (l *failingLedger) SearchLiteral(context.Context, string) ([]inventory.Product, error) {
	return nil, errDisk
}

func (l *failingLedger) Get(context.Context, int64) (inventory.Product, error) {
	return inventory.Product{}, errDisk
}

func newTestShell(t *testing.T, ledger Ledger, format string) (*shell, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	return &shell{
		ledger: ledger,
		out:    &OutputFormatter{Format: format, Writer: buf},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, buf
}

func openTestLedger(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestShell_FailurePaths(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		run     func(sh *shell) error
		message string
	}{
		{"add", func(sh *shell) error { return sh.addProduct(ctx, "Widget", 1, 1) }, "Failed to add product.\n"},
		{"adjust", func(sh *shell) error { return sh.updateStock(ctx, 1, 1) }, "Failed to update stock.\n"},
		{"remove", func(sh *shell) error { return sh.removeProduct(ctx, 1) }, "Failed to remove product.\n"},
		{"list", func(sh *shell) error { return sh.showAll(ctx) }, "Failed to fetch products.\n"},
		{"search", func(sh *shell) error { return sh.searchProduct(ctx, "w", false) }, "Failed to search product.\n"},
		{"search_literal", func(sh *shell) error { return sh.searchProduct(ctx, "w", true) }, "Failed to search product.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, buf := newTestShell(t, &failingLedger{}, "text")

			err := tt.run(sh)
			require.Error(t, err)
			assert.True(t, isReported(err))
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.ErrorIs(t, err, store.ErrStatement)
			assert.Equal(t, tt.message, buf.String())
		})
	}
}

func TestShell_AddRejectsInvalidDraft(t *testing.T) {
	ledger := &failingLedger{}
	sh, buf := newTestShell(t, ledger, "text")

	err := sh.addProduct(context.Background(), "   ", 1, 1)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, "Invalid input: product name must not be empty\n", buf.String())

	buf.Reset()
	err = sh.addProduct(context.Background(), "Widget", -1, 1)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Invalid input:")

	assert.Zero(t, ledger.addCalls, "invalid drafts never reach the ledger")
}

func TestShell_Lifecycle(t *testing.T) {
	ctx := context.Background()
	sh, buf := newTestShell(t, openTestLedger(t), "text")

	require.NoError(t, sh.addProduct(ctx, "Widget", 9.99, 10))
	assert.Equal(t, "Product added successfully.\n", buf.String())

	buf.Reset()
	require.NoError(t, sh.updateStock(ctx, 1, -3))
	assert.Equal(t, "Stock updated for ID: 1 (quantity now 7)\n", buf.String())

	buf.Reset()
	require.NoError(t, sh.searchProduct(ctx, "idg", false))
	assert.Contains(t, buf.String(), "Widget")
	assert.Contains(t, buf.String(), "9.99")

	buf.Reset()
	require.NoError(t, sh.removeProduct(ctx, 1))
	assert.Equal(t, "Product removed.\n", buf.String())

	buf.Reset()
	require.NoError(t, sh.searchProduct(ctx, "idg", false))
	assert.Equal(t, "No product found with the name: idg\n", buf.String())
}

func TestShell_MissingID(t *testing.T) {
	ctx := context.Background()
	sh, buf := newTestShell(t, openTestLedger(t), "text")

	err := sh.updateStock(ctx, 42, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, inventory.ErrNotFound)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "Invalid product ID: 42\n", buf.String())

	buf.Reset()
	err = sh.removeProduct(ctx, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, inventory.ErrNotFound)
	assert.Equal(t, "Invalid product ID: 42\n", buf.String())
}

func TestShell_ReportedErrorsAreNotFatal(t *testing.T) {
	sh, _ := newTestShell(t, &failingLedger{}, "text")
	err := sh.showAll(context.Background())
	require.True(t, isReported(err))
	require.False(t, errors.Is(err, inventory.ErrNotFound))
}
