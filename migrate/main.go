// Command migrate converts the deals.json written by the first version of
// the bot (date_iso, rub, clean_rub, usd, share fields) into the current
// ledger format.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/deals"
	"github.com/google/subcommands"
)

func main() {
	// The migrate tool needs its own set of flags, independent of the main dcs tool.
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	commander := subcommands.NewCommander(flag.CommandLine, "migrate")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(&legacyCmd{}, "")
	commander.Register(&checkCmd{}, "")
	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// --- legacyCmd ---

type legacyCmd struct {
	in  string
	out string
}

func (*legacyCmd) Name() string     { return "legacy" }
func (*legacyCmd) Synopsis() string { return "converts a legacy deals.json into a ledger" }
func (*legacyCmd) Usage() string {
	return `migrate legacy -in <legacy_deals.json> -out <ledger.json>

Converts a legacy deals file into the current ledger format. Derived amounts
are computed again from the gross amount, fee and rate. The input file is
never modified.
`
}
func (c *legacyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "The path to the legacy deals.json.")
	f.StringVar(&c.out, "out", "", "The path where the new ledger will be written.")
}

func (c *legacyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" || c.out == "" {
		fmt.Fprintln(os.Stderr, "Error: -in and -out flags are required.")
		return subcommands.ExitUsageError
	}
	if filepath.Clean(c.in) == filepath.Clean(c.out) {
		fmt.Fprintln(os.Stderr, "Error: -in and -out must be different files.")
		return subcommands.ExitUsageError
	}

	legacy, err := DecodeLegacy(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding legacy deals: %v\n", err)
		return subcommands.ExitFailure
	}
	l, err := Convert(legacy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting legacy deals: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := l.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning, the converted ledger is inconsistent, fix it before running 'dcs fmt':\n%v\n", err)
	}
	for _, k := range l.Duplicates() {
		fmt.Fprintf(os.Stderr, "Warning, several deals on %s share index #%d\n", k.Date, k.Index)
	}
	if err := deals.NewFileStore(c.out).Save(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully converted %d deals into %s\n", l.Len(), c.out)
	return subcommands.ExitSuccess
}

// --- checkCmd ---

type checkCmd struct {
	legacy    string
	ledger    string
	tolerance float64
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verifies a migration by comparing shares" }
func (*checkCmd) Usage() string {
	return `migrate check -legacy <legacy_deals.json> -ledger <ledger.json>

Compares every deal of the legacy file to the converted ledger and reports
the deals whose share differs.
`
}
func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.legacy, "legacy", "", "The path to the legacy deals.json.")
	f.StringVar(&c.ledger, "ledger", "", "The path to the converted ledger.")
	f.Float64Var(&c.tolerance, "tolerance", 1e-6, "Accepted difference between shares.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.legacy == "" || c.ledger == "" {
		fmt.Fprintln(os.Stderr, "Error: -legacy and -ledger flags are required.")
		return subcommands.ExitUsageError
	}
	legacy, err := DecodeLegacy(c.legacy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding legacy deals: %v\n", err)
		return subcommands.ExitFailure
	}
	s := deals.NewFileStore(c.ledger)
	s.Strict = true
	l, err := s.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	mismatches := Check(legacy, l, c.tolerance)
	for _, m := range mismatches {
		fmt.Println(m)
	}
	if len(mismatches) > 0 {
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ %d deals match.\n", len(legacy))
	return subcommands.ExitSuccess
}
