package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/deals"
	"github.com/etnz/deals/date"
	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a deal by date and index" }
func (*deleteCmd) Usage() string {
	return `dcs delete <D.M> <index>

  Deletes the deal with the given index on that date. Use 'dcs bydate'
  to find the index. The other deals keep their index.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (*deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: dcs delete <D.M> <index>")
		return subcommands.ExitUsageError
	}
	on, err := date.ParseShorthand(f.Arg(0), date.Today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid date %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	index, err := strconv.Atoi(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Index must be a number, got %q\n", f.Arg(1))
		return subcommands.ExitUsageError
	}

	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	d, err := book.Delete(on, index)
	switch {
	case errors.Is(err, deals.ErrNotFound):
		fmt.Fprintf(os.Stderr, "No deal #%d on %s\n", index, on.Format(date.ShortFormat))
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error deleting deal: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "✅ Deleted %s #%d on %s\n", d.Name, d.Index, d.Date.Format(date.ShortFormat))
	return subcommands.ExitSuccess
}
