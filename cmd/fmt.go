package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/deals/date"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `dcs fmt

  Validates the ledger and writes it back in its canonical form. Nothing is
  written if an index is not positive or if a deal has no member. Deals
  sharing a date and index are reported, "dcs delete" removes the first one.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	dups, err := book.Rewrite()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting ledger:\n%v\n", err)
		return subcommands.ExitFailure
	}
	for _, k := range dups {
		fmt.Fprintf(os.Stderr, "Warning, several deals on %s share index #%d\n", k.Date.Format(date.ShortFormat), k.Index)
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted ledger.\n")
	return subcommands.ExitSuccess
}
