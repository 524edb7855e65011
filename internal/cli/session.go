package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/stockledger/internal/store"
)

// withShell opens the store for the duration of fn and closes it on every
// exit path. An open failure is reported and nothing else runs.
func withShell(opts *RootOptions, cmd *cobra.Command, fn func(ctx context.Context, sh *shell) error) error {
	out := opts.formatter(cmd)
	logger := opts.logger()

	logger.Debug("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		logger.Error("cannot open database", "path", opts.Database, "error", err)
		return out.Report(WrapExitError(ExitCommandError, fmt.Sprintf("Can't open database: %v", err), err))
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return fn(ctx, &shell{ledger: st, out: out, logger: logger})
}

// logger returns the configured logger, or a discarding one when the root
// pre-run hook has not run.
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// parseInt parses a base-10 integer argument, naming the argument on failure.
func parseInt(what, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid %s %q: must be an integer", what, s))
	}
	return v, nil
}
