package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/stockledger/internal/inventory"
)

// Ledger is the set of product operations the shell drives.
// *store.Store satisfies it.
type Ledger interface {
	Add(ctx context.Context, name string, price float64, quantity int64) (int64, error)
	AdjustStock(ctx context.Context, id, delta int64) (inventory.Outcome, error)
	Remove(ctx context.Context, id int64) (inventory.Outcome, error)
	List(ctx context.Context) ([]inventory.Product, error)
	Search(ctx context.Context, substring string) ([]inventory.Product, error)
	SearchLiteral(ctx context.Context, substring string) ([]inventory.Product, error)
	Get(ctx context.Context, id int64) (inventory.Product, error)
}

// AddResult is the payload of a successful add.
type AddResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func (r AddResult) String() string { return r.Message }

// StockResult is the payload of a successful stock adjustment.
type StockResult struct {
	ID       int64             `json:"id"`
	Outcome  inventory.Outcome `json:"outcome"`
	Quantity *int64            `json:"quantity,omitempty"`
}

func (r StockResult) String() string {
	if r.Quantity == nil {
		return fmt.Sprintf("Stock updated for ID: %d", r.ID)
	}
	return fmt.Sprintf("Stock updated for ID: %d (quantity now %d)", r.ID, *r.Quantity)
}

// RemoveResult is the payload of a successful remove.
type RemoveResult struct {
	ID      int64             `json:"id"`
	Outcome inventory.Outcome `json:"outcome"`
}

func (r RemoveResult) String() string { return "Product removed." }

// ProductsResult is the payload of list and search.
type ProductsResult struct {
	Query    string              `json:"query,omitempty"`
	Products []inventory.Product `json:"products"`

	search bool
}

// String renders the products as a table. An empty search reads as
// "no matches" rather than an empty table.
func (r ProductsResult) String() string {
	if r.search && len(r.Products) == 0 {
		return "No product found with the name: " + r.Query
	}
	var b strings.Builder
	_ = RenderProducts(&b, r.Products)
	return strings.TrimSuffix(b.String(), "\n")
}

// shell maps the five ledger operations to user-facing output.
// Every method reports failures through the formatter and returns the
// reported error, so callers only decide whether to stop.
type shell struct {
	ledger Ledger
	out    *OutputFormatter
	logger *slog.Logger
}

func (s *shell) addProduct(ctx context.Context, name string, price float64, quantity int64) error {
	draft := inventory.NewDraft(name, price, quantity)
	if err := draft.Validate(); err != nil {
		return s.out.Report(NewExitError(ExitCommandError, "Invalid input: "+err.Error()))
	}

	id, err := s.ledger.Add(ctx, draft.Name, draft.Price, draft.Quantity)
	if err != nil {
		s.logger.Error("add product failed", "error", err)
		return s.out.Report(WrapExitError(ExitFailure, "Failed to add product.", err))
	}

	s.logger.Debug("product added", "id", id, "name", draft.Name)
	return s.out.Success(AddResult{ID: id, Message: "Product added successfully."})
}

func (s *shell) updateStock(ctx context.Context, id, delta int64) error {
	outcome, err := s.ledger.AdjustStock(ctx, id, delta)
	switch outcome {
	case inventory.OutcomeUpdated:
		result := StockResult{ID: id, Outcome: outcome}
		if p, err := s.ledger.Get(ctx, id); err == nil {
			result.Quantity = &p.Quantity
		} else {
			s.logger.Warn("read back after adjust failed", "id", id, "error", err)
		}
		s.logger.Debug("stock updated", "id", id, "delta", delta)
		return s.out.Success(result)

	case inventory.OutcomeNotFound:
		return s.out.Report(invalidID(id))

	default:
		s.logger.Error("adjust stock failed", "id", id, "error", err)
		return s.out.Report(WrapExitError(ExitFailure, "Failed to update stock.", err))
	}
}

func (s *shell) removeProduct(ctx context.Context, id int64) error {
	outcome, err := s.ledger.Remove(ctx, id)
	switch outcome {
	case inventory.OutcomeRemoved:
		s.logger.Debug("product removed", "id", id)
		return s.out.Success(RemoveResult{ID: id, Outcome: outcome})

	case inventory.OutcomeNotFound:
		return s.out.Report(invalidID(id))

	default:
		s.logger.Error("remove product failed", "id", id, "error", err)
		return s.out.Report(WrapExitError(ExitFailure, "Failed to remove product.", err))
	}
}

func (s *shell) showAll(ctx context.Context) error {
	products, err := s.ledger.List(ctx)
	if err != nil {
		s.logger.Error("list products failed", "error", err)
		return s.out.Report(WrapExitError(ExitFailure, "Failed to fetch products.", err))
	}
	return s.out.Success(ProductsResult{Products: products})
}

func (s *shell) searchProduct(ctx context.Context, term string, literal bool) error {
	search := s.ledger.Search
	if literal {
		search = s.ledger.SearchLiteral
	}

	products, err := search(ctx, term)
	if err != nil {
		s.logger.Error("search products failed", "term", term, "error", err)
		return s.out.Report(WrapExitError(ExitFailure, "Failed to search product.", err))
	}
	return s.out.Success(ProductsResult{Query: term, Products: products, search: true})
}

func invalidID(id int64) *ExitError {
	return WrapExitError(ExitFailure, fmt.Sprintf("Invalid product ID: %d", id),
		fmt.Errorf("product %d: %w", id, inventory.ErrNotFound))
}
