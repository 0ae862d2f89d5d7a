package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/deals"
	"github.com/etnz/deals/renderer"
	"github.com/google/subcommands"
)

type monthCmd struct{}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "display a calendar month report" }
func (*monthCmd) Usage() string {
	return `dcs month <MM>

  Displays the deals of month MM (1 to 12) of the current year.

Usage Examples:
$ dcs month 07
`
}

func (*monthCmd) SetFlags(f *flag.FlagSet) {}

func (*monthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: dcs month <MM> (e.g. dcs month 07)")
		return subcommands.ExitUsageError
	}
	month, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Month must be a number, got %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	report, err := book.Month(month)
	switch {
	case errors.Is(err, deals.ErrValidation):
		fmt.Fprintf(os.Stderr, "Invalid month: %v\n", err)
		return subcommands.ExitUsageError
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderReport(fmt.Sprintf("Month %02d", month), report, renderOptions()))
	return subcommands.ExitSuccess
}
