package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewAdjustCommand creates the adjust command.
func NewAdjustCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adjust <id> <delta>",
		Short: "Add to or subtract from a product's quantity",
		Long: `Apply quantity = quantity + delta to one product.

The quantity is not clamped at zero. Put "--" before a negative delta so it
is not read as a flag.

Example:
  stockledger adjust 1 5
  stockledger adjust -- 1 -3`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseInt("product ID", args[0])
			if err != nil {
				return rootOpts.formatter(cmd).Report(err)
			}
			delta, err := parseInt("delta", args[1])
			if err != nil {
				return rootOpts.formatter(cmd).Report(err)
			}
			return withShell(rootOpts, cmd, func(ctx context.Context, sh *shell) error {
				return sh.updateStock(ctx, id, delta)
			})
		},
	}

	return cmd
}
