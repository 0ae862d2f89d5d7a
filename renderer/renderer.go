// Package renderer turns deals and reports into markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/deals"
)

//go:embed templates/*.md
var embedded embed.FS

var templates, _ = fs.Sub(embedded, "templates")

// Options holds configuration for rendering.
type Options struct {
	LocalCurrency     string // currency of gross and net amounts, e.g. "RUB"
	ReferenceCurrency string // currency of converted amounts and shares, e.g. "USD"
}

// DefaultOptions are the currencies the ledger was designed for.
var DefaultOptions = Options{LocalCurrency: "RUB", ReferenceCurrency: "USD"}

var linePartials = map[string]string{
	"deal_line": "deal_line.md",
}

// RenderDeal renders a freshly saved deal.
func RenderDeal(d deals.Deal, opts Options) string {
	return renderTemplate("deal", "deal.md", linePartials, NewDeal(d, opts))
}

// RenderReport renders a report with its per-member totals.
// An empty title uses the report range.
func RenderReport(title string, r deals.Report, opts Options) string {
	partials := map[string]string{
		"deal_line":      "deal_line.md",
		"report_members": "report_members.md",
	}
	return renderTemplate("report", "report.md", partials, NewReport(title, r, opts))
}

// RenderDay renders the deals of a single day with their index, as needed
// to delete one of them.
func RenderDay(r deals.Report, opts Options) string {
	return renderTemplate("day", "day.md", linePartials, NewReport("", r, opts))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
