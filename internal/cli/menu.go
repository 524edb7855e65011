package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const menuText = `
--- Inventory & Stock Management ---
1. Add Product
2. Update Stock
3. Remove Product
4. Show All Products
5. Search Product
6. Exit
Choose an option: `

// NewMenuCommand creates the interactive menu command.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive inventory menu",
		Long: `Run the interactive inventory menu on standard input.

The database is opened once and closed when the menu exits, either through
option 6 or at end of input. Output is always text.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShell(rootOpts, cmd, func(ctx context.Context, sh *shell) error {
				sh.out.Format = "text"
				return runMenu(ctx, sh, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}

	return cmd
}

// prompter reads one answer per line.
type prompter struct {
	scanner *bufio.Scanner
	w       io.Writer
}

// ask prints prompt and returns the next line. ok is false at end of input.
func (p *prompter) ask(prompt string) (line string, ok bool) {
	fmt.Fprint(p.w, prompt)
	if !p.scanner.Scan() {
		return "", false
	}
	return p.scanner.Text(), true
}

func (p *prompter) askInt(prompt string) (v int64, ok bool, err error) {
	line, ok := p.ask(prompt)
	if !ok {
		return 0, false, nil
	}
	v, err = strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%q is not a number", strings.TrimSpace(line))
	}
	return v, true, nil
}

func (p *prompter) askFloat(prompt string) (v float64, ok bool, err error) {
	line, ok := p.ask(prompt)
	if !ok {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, true, fmt.Errorf("%q is not a number", strings.TrimSpace(line))
	}
	return v, true, nil
}

// runMenu loops until option 6 or end of input. Operation failures are
// printed and the loop continues; only output errors end it early.
func runMenu(ctx context.Context, sh *shell, in io.Reader, w io.Writer) error {
	p := &prompter{scanner: bufio.NewScanner(in), w: w}

	for {
		choice, ok := p.ask(menuText)
		if !ok {
			fmt.Fprintln(w, "\nExiting...")
			return nil
		}

		var err error
		switch strings.TrimSpace(choice) {
		case "1":
			err = menuAdd(ctx, sh, p)
		case "2":
			err = menuUpdate(ctx, sh, p)
		case "3":
			err = menuRemove(ctx, sh, p)
		case "4":
			err = sh.showAll(ctx)
		case "5":
			err = menuSearch(ctx, sh, p)
		case "6":
			fmt.Fprintln(w, "Exiting...")
			return nil
		default:
			fmt.Fprintln(w, "Invalid choice. Try again.")
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(w, "\nExiting...")
			return nil
		}
		if err != nil && !isReported(err) {
			return err
		}
	}
}

// inputError prints a parse failure and swallows it, or maps end of input
// to io.EOF.
func inputError(w io.Writer, ok bool, err error) error {
	if !ok {
		return io.EOF
	}
	if err != nil {
		fmt.Fprintf(w, "Invalid input: %v\n", err)
	}
	return nil
}

func menuAdd(ctx context.Context, sh *shell, p *prompter) error {
	name, ok := p.ask("Enter product name: ")
	if !ok {
		return io.EOF
	}
	price, ok, err := p.askFloat("Enter price: ")
	if !ok || err != nil {
		return inputError(p.w, ok, err)
	}
	quantity, ok, err := p.askInt("Enter quantity: ")
	if !ok || err != nil {
		return inputError(p.w, ok, err)
	}
	return sh.addProduct(ctx, name, price, quantity)
}

func menuUpdate(ctx context.Context, sh *shell, p *prompter) error {
	id, ok, err := p.askInt("Enter product ID: ")
	if !ok || err != nil {
		return inputError(p.w, ok, err)
	}
	delta, ok, err := p.askInt("Enter quantity to add (negative to subtract): ")
	if !ok || err != nil {
		return inputError(p.w, ok, err)
	}
	return sh.updateStock(ctx, id, delta)
}

func menuRemove(ctx context.Context, sh *shell, p *prompter) error {
	id, ok, err := p.askInt("Enter product ID to remove: ")
	if !ok || err != nil {
		return inputError(p.w, ok, err)
	}
	return sh.removeProduct(ctx, id)
}

func menuSearch(ctx context.Context, sh *shell, p *prompter) error {
	term, ok := p.ask("Enter product name to search: ")
	if !ok {
		return io.EOF
	}
	return sh.searchProduct(ctx, term, false)
}
