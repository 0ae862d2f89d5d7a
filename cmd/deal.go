package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/deals"
	"github.com/etnz/deals/conversation"
	"github.com/etnz/deals/renderer"
	"github.com/google/subcommands"
)

// stdin is where the interactive conversation reads answers.
var stdin io.Reader = os.Stdin

type dealCmd struct {
	raw deals.RawDeal
}

func (*dealCmd) Name() string     { return "deal" }
func (*dealCmd) Synopsis() string { return "record a new deposit deal" }
func (*dealCmd) Usage() string {
	return `dcs deal [-d <date>] [-n <name>] [-a <amount>] [-f <fee>] [-r <rate>] [-m <members>]

  Records a new deal. Without flags, the deal is collected interactively,
  one field at a time: date, name, amount, fee, rate then members.
  Type "cancel" to abort.

  With flags, every field must be given.

Usage Examples:
$ dcs deal -d 21.07 -n QR -a 10000 -f 2 -r 90 -m "#10 #12"
`
}

func (c *dealCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.raw.Date, "d", "", "Deal date, D.M or 'today'")
	f.StringVar(&c.raw.Name, "n", "", "Deal name (e.g. SBP, QR)")
	f.StringVar(&c.raw.Amount, "a", "", "Gross amount in local currency")
	f.StringVar(&c.raw.Fee, "f", "", "Fee in percent")
	f.StringVar(&c.raw.Rate, "r", "", "Exchange rate, local currency per reference unit")
	f.StringVar(&c.raw.Members, "m", "", "Members, e.g. '#10 #12'")
}

func (c *dealCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	var d deals.Deal
	if f.NFlag() == 0 {
		d, err = conversation.Run(stdin, stdout, book)
	} else {
		d, err = book.CreateDeal(c.raw)
	}

	var fe *deals.FieldError
	switch {
	case errors.Is(err, conversation.ErrCancelled):
		fmt.Fprintln(stdout, "❌ Cancelled")
		return subcommands.ExitSuccess
	case errors.As(err, &fe):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error saving deal: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderDeal(d, renderOptions()))
	return subcommands.ExitSuccess
}
