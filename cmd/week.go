package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/deals/date"
	"github.com/etnz/deals/renderer"
	"github.com/google/subcommands"
)

type weekCmd struct {
	date  string
	watch int
}

func (*weekCmd) Name() string     { return "week" }
func (*weekCmd) Synopsis() string { return "display the payroll week report" }
func (*weekCmd) Usage() string {
	return `dcs week [-d <date>] [-w n]

  Displays the deals of the payroll week (Tuesday to Monday) containing
  the given date, today by default.
`
}

func (c *weekCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "A day within the week, D.M (defaults to today)")
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
}

func (c *weekCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var ref date.Date
	if c.date != "" {
		var err error
		if ref, err = date.ParseShorthand(c.date, date.Today()); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid date %q: %v\n", c.date, err)
			return subcommands.ExitUsageError
		}
	}

	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	for {
		report, err := book.Week(ref)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if c.watch == 0 {
				return subcommands.ExitFailure
			}
		} else {
			if c.watch > 0 {
				fmt.Fprintln(stdout, "\033[2J")
			}
			title := "Current payroll week (Tue–Mon)"
			if !ref.IsZero() {
				title = "Payroll week " + report.Range.String()
			}
			printMarkdown(renderer.RenderReport(title, report, renderOptions()))
		}

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}
