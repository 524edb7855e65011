package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Execute runs the CLI with the given arguments and streams and returns the
// process exit code. Errors already written by a command are not repeated.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	if !isReported(err) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	// Unclassified errors come from cobra itself: unknown commands,
	// wrong argument counts, bad flags.
	return ExitCommandError
}
