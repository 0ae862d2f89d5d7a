package agent

import (
	"context"
	"fmt"
	"strconv"

	"github.com/etnz/deals"
	"github.com/etnz/deals/date"
	"github.com/etnz/deals/renderer"
	"google.golang.org/genai"
)

const dateDoc = `A date written D.M (e.g. 21.07 or 1/7) in the current year, or 'today'.`

// Functions returns the tools reading the ledger of b. Their output is
// markdown.
func Functions(b *deals.Book, opts renderer.Options) []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "deals_on",
				Description: "Lists the deals of a single day with their index.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date": {Type: genai.TypeString, Description: dateDoc},
					},
					Required: []string{"date"},
				},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				on, err := dateArg(b, args, "date")
				if err != nil {
					return "", err
				}
				r, err := b.OnDate(on)
				if err != nil {
					return "", err
				}
				return renderer.RenderDay(r, opts), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "week_report",
				Description: "Reports the deals and member shares of the payroll week (Tuesday to Monday) containing a day.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date": {Type: genai.TypeString, Description: dateDoc + " Today is the default."},
					},
				},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				var ref date.Date
				if _, ok := args["date"]; ok {
					var err error
					if ref, err = dateArg(b, args, "date"); err != nil {
						return "", err
					}
				}
				r, err := b.Week(ref)
				if err != nil {
					return "", err
				}
				return renderer.RenderReport("Payroll week "+r.Range.String(), r, opts), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "month_report",
				Description: "Reports the deals and member shares of a calendar month of the current year.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"month": {Type: genai.TypeInteger, Description: "The month number, from 1 to 12."},
					},
					Required: []string{"month"},
				},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				month, err := intArg(args, "month")
				if err != nil {
					return "", err
				}
				r, err := b.Month(month)
				if err != nil {
					return "", err
				}
				return renderer.RenderReport(fmt.Sprintf("Month %02d", month), r, opts), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "range_report",
				Description: "Reports the deals and member shares between two days, both included.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"from": {Type: genai.TypeString, Description: dateDoc},
						"to":   {Type: genai.TypeString, Description: dateDoc},
					},
					Required: []string{"from", "to"},
				},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				from, err := dateArg(b, args, "from")
				if err != nil {
					return "", err
				}
				to, err := dateArg(b, args, "to")
				if err != nil {
					return "", err
				}
				r, err := b.Range(date.Range{From: from, To: to})
				if err != nil {
					return "", err
				}
				return renderer.RenderReport("", r, opts), nil
			},
		},
	}
}

func dateArg(b *deals.Book, args map[string]any, name string) (date.Date, error) {
	s, ok := args[name].(string)
	if !ok {
		return date.Date{}, fmt.Errorf("argument %q is not a string as expected but %T", name, args[name])
	}
	d, err := date.ParseShorthand(s, b.Today())
	if err != nil {
		// models often prefer ISO dates
		if iso, isoErr := date.Parse(s); isoErr == nil {
			return iso, nil
		}
		return date.Date{}, fmt.Errorf("argument %q must be a valid date got %q: %w. %s", name, s, err, dateDoc)
	}
	return d, nil
}

func intArg(args map[string]any, name string) (int, error) {
	switch v := args[name].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("argument %q is not a number as expected but %T", name, v)
	}
}
