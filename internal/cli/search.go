package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	Literal bool
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search <substring>",
		Short: "Find products whose name contains a substring",
		Long: `Find products whose name contains substring (ASCII case-insensitive).

By default '%' and '_' in substring act as SQL LIKE wildcards.
Pass --literal to match them as ordinary characters.

Example:
  stockledger search idg
  stockledger search --literal "50%"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShell(opts.RootOptions, cmd, func(ctx context.Context, sh *shell) error {
				return sh.searchProduct(ctx, args[0], opts.Literal)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.Literal, "literal", false, "match '%' and '_' literally")

	return cmd
}
