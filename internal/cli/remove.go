package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a product",
		Long: `Delete a product by id. Deleted ids are never reassigned.

Example:
  stockledger remove 1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseInt("product ID", args[0])
			if err != nil {
				return rootOpts.formatter(cmd).Report(err)
			}
			return withShell(rootOpts, cmd, func(ctx context.Context, sh *shell) error {
				return sh.removeProduct(ctx, id)
			})
		},
	}

	return cmd
}
