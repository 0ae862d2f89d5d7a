// Package cmd implements the CLI application to manage a deals ledger.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/deals"
	"github.com/etnz/deals/renderer"
	"github.com/etnz/deals/sqlite"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// stdout is where commands print their report.
var stdout io.Writer = os.Stdout

// openBook opens the ledger selected by the configuration.
// The returned close function must be called once done.
func openBook() (*deals.Book, func() error, error) {
	cfg := LoadConfig()
	switch cfg.Store {
	case "", StoreFile:
		s := deals.NewFileStore(cfg.LedgerFile)
		s.Strict = cfg.Strict
		return deals.NewBook(s), func() error { return nil }, nil
	case StoreSQLite:
		s, err := sqlite.Open(cfg.LedgerFile)
		if err != nil {
			return nil, nil, err
		}
		return deals.NewBook(s), s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q, valid values are %q and %q", cfg.Store, StoreFile, StoreSQLite)
	}
}

// renderOptions returns the currencies configured for rendering.
func renderOptions() renderer.Options {
	cfg := LoadConfig()
	return renderer.Options{LocalCurrency: cfg.LocalCurrency, ReferenceCurrency: cfg.ReferenceCurrency}
}

// printMarkdown writes md to stdout, styled for the terminal unless -plain is set.
func printMarkdown(md string) {
	if *plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
