package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/stockledger/internal/inventory"
)

// likeEscape is the escape character used by SearchLiteral.
const likeEscape = `\`

// List returns every product ordered by id ascending.
//
// Returns an empty slice (not nil) when the table has no rows.
func (s *Store) List(ctx context.Context) ([]inventory.Product, error) {
	return s.queryProducts(ctx, "list products", `
		SELECT id, name, price, quantity
		FROM products
		ORDER BY id ASC
	`)
}

// Search returns every product whose name contains substring, ordered by id.
//
// The substring is placed between '%' wildcards and handed to LIKE unchanged,
// so '%' and '_' inside it act as wildcards. Use SearchLiteral to match them
// literally. LIKE is case-insensitive for ASCII letters only.
//
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) Search(ctx context.Context, substring string) ([]inventory.Product, error) {
	pattern := "%" + inventory.NormalizeTerm(substring) + "%"
	return s.queryProducts(ctx, "search products", `
		SELECT id, name, price, quantity
		FROM products
		WHERE name LIKE ?
		ORDER BY id ASC
	`, pattern)
}

// SearchLiteral is Search with LIKE wildcards in substring escaped, so the
// match is a plain substring test.
func (s *Store) SearchLiteral(ctx context.Context, substring string) ([]inventory.Product, error) {
	pattern := "%" + escapeLike(inventory.NormalizeTerm(substring)) + "%"
	return s.queryProducts(ctx, "search products", `
		SELECT id, name, price, quantity
		FROM products
		WHERE name LIKE ? ESCAPE '`+likeEscape+`'
		ORDER BY id ASC
	`, pattern)
}

// Get retrieves a single product by id.
// Returns inventory.ErrNotFound if no row has that id.
func (s *Store) Get(ctx context.Context, id int64) (inventory.Product, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, price, quantity
		FROM products
		WHERE id = ?
	`, id)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return inventory.Product{}, fmt.Errorf("get product %d: %w", id, inventory.ErrNotFound)
	}
	if err != nil {
		return inventory.Product{}, fmt.Errorf("get product %d: %w: %w", id, ErrStatement, err)
	}
	return p, nil
}

// queryProducts runs a multi-row product query. Rows are closed before return
// on every path.
func (s *Store) queryProducts(ctx context.Context, op, query string, args ...any) ([]inventory.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrStatement, err)
	}
	defer rows.Close()

	products := []inventory.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", op, ErrStatement, err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate: %w: %w", op, ErrStatement, err)
	}

	return products, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (inventory.Product, error) {
	var p inventory.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity); err != nil {
		return inventory.Product{}, err
	}
	return p, nil
}

// escapeLike escapes LIKE wildcards and the escape character itself.
func escapeLike(s string) string {
	r := strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	)
	return r.Replace(s)
}
