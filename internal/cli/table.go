package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/stockledger/internal/inventory"
)

// tableWidth is the sum of the column widths below.
const tableWidth = 50

// RenderProducts writes products as a fixed-width table: ID and Price and
// Quantity in 10-column fields, Name in a 20-column field, price to two
// decimals. Long names are not truncated and push later columns right.
func RenderProducts(w io.Writer, products []inventory.Product) error {
	if _, err := fmt.Fprintf(w, "%-10s%-20s%-10s%-10s\n", "ID", "Name", "Price", "Quantity"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", tableWidth)); err != nil {
		return err
	}
	for _, p := range products {
		if _, err := fmt.Fprintf(w, "%-10d%-20s%-10.2f%-10d\n", p.ID, p.Name, p.Price, p.Quantity); err != nil {
			return err
		}
	}
	return nil
}
