package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Price    float64
	Quantity int64
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a product",
		Long: `Add a product to the ledger. The store assigns the product id.

Example:
  stockledger add Widget --price 9.99 --quantity 10
  stockledger add "Blue Widget" --price 12.50 --quantity 3 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShell(opts.RootOptions, cmd, func(ctx context.Context, sh *shell) error {
				return sh.addProduct(ctx, args[0], opts.Price, opts.Quantity)
			})
		},
	}

	cmd.Flags().Float64Var(&opts.Price, "price", 0, "unit price (required, >= 0)")
	cmd.Flags().Int64Var(&opts.Quantity, "quantity", 0, "quantity on hand")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}
