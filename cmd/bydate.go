package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/deals/date"
	"github.com/etnz/deals/renderer"
	"github.com/google/subcommands"
)

type bydateCmd struct{}

func (*bydateCmd) Name() string     { return "bydate" }
func (*bydateCmd) Synopsis() string { return "list the deals of a day with their index" }
func (*bydateCmd) Usage() string {
	return `dcs bydate <D.M>

  Lists the deals of a single day, with the index needed by 'dcs delete'.
`
}

func (*bydateCmd) SetFlags(f *flag.FlagSet) {}

func (*bydateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: dcs bydate <D.M>")
		return subcommands.ExitUsageError
	}
	on, err := date.ParseShorthand(f.Arg(0), date.Today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid date %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	report, err := book.OnDate(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderDay(report, renderOptions()))
	return subcommands.ExitSuccess
}
