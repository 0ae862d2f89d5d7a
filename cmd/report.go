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

type reportCmd struct {
	period string
	date   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a report over a custom range" }
func (*reportCmd) Usage() string {
	return `dcs report <D.M> <D.M>
dcs report -p <period> [-d <D.M>]

  Displays the deals between the two dates, both included, or the deals of
  the period (daily, payroll, monthly) containing the given date.

Usage Examples:
$ dcs report 01.07 15.07
$ dcs report -p monthly -d 14.07
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Period containing -d: daily, payroll or monthly")
	f.StringVar(&c.date, "d", "today", "A day within the period, D.M")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.reportRange(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Usage: dcs report <D.M> <D.M> | dcs report -p <period> [-d <D.M>]")
		return subcommands.ExitUsageError
	}

	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	report, err := book.Range(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderReport("", report, renderOptions()))
	return subcommands.ExitSuccess
}

// reportRange reads the range from either the -p flag or two positional dates.
func (c *reportCmd) reportRange(f *flag.FlagSet) (date.Range, error) {
	today := date.Today()
	if c.period != "" {
		if f.NArg() != 0 {
			return date.Range{}, fmt.Errorf("-p and positional dates are exclusive")
		}
		period, err := date.ParsePeriod(c.period)
		if err != nil {
			return date.Range{}, err
		}
		on, err := date.ParseShorthand(c.date, today)
		if err != nil {
			return date.Range{}, fmt.Errorf("invalid date %q: %w", c.date, err)
		}
		return date.NewRange(on, period), nil
	}
	if f.NArg() != 2 {
		return date.Range{}, fmt.Errorf("expected two dates")
	}
	from, err := date.ParseShorthand(f.Arg(0), today)
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid date %q: %w", f.Arg(0), err)
	}
	to, err := date.ParseShorthand(f.Arg(1), today)
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid date %q: %w", f.Arg(1), err)
	}
	return date.Range{From: from, To: to}, nil
}
