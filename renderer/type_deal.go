package renderer

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/deals"
	"github.com/etnz/deals/date"
	"github.com/shopspring/decimal"
)

// Deal is the printable form of a deals.Deal.
type Deal struct {
	Day         string
	Index       int
	Name        string
	Gross       string
	Net         string
	Fee         string
	Rate        string
	Converted   string
	Pool        string
	Share       string
	MemberCount int
	MemberList  string
}

// NewDeal formats all the amounts of d.
func NewDeal(d deals.Deal, opts Options) Deal {
	return Deal{
		Day:         d.Date.Format(date.ShortFormat),
		Index:       d.Index,
		Name:        d.Name,
		Gross:       Money(d.GrossAmount, opts.LocalCurrency),
		Net:         Money(d.NetAmount, opts.LocalCurrency),
		Fee:         d.FeePercent.StringFixed(1) + "%",
		Rate:        d.ExchangeRate.StringFixed(2),
		Converted:   Money(d.Converted, opts.ReferenceCurrency),
		Pool:        Money(d.Pool, opts.ReferenceCurrency),
		Share:       Money(d.SharePerMember, opts.ReferenceCurrency),
		MemberCount: len(d.Members),
		MemberList:  strings.Join(d.Members, ", "),
	}
}

// Member is the printable form of a deals.MemberShare.
type Member struct {
	Member string
	Deals  int
	Share  string
}

// Report is the printable form of a deals.Report.
type Report struct {
	Title   string
	Empty   bool
	Total   string
	Lines   []Deal
	Members []Member
}

// NewReport formats r, an empty title is replaced by the report range.
func NewReport(title string, r deals.Report, opts Options) Report {
	if title == "" {
		title = r.Range.String()
	}
	res := Report{
		Title: title,
		Empty: r.Empty,
		Total: Money(r.TotalShare, opts.ReferenceCurrency),
	}
	for _, d := range r.Lines {
		res.Lines = append(res.Lines, NewDeal(d, opts))
	}
	for _, m := range r.Members {
		res.Members = append(res.Members, Member{Member: m.Member, Deals: m.Deals, Share: Money(m.Share, opts.ReferenceCurrency)})
	}
	return res
}

// Money formats value in the currency 'code', rounded to the currency's
// minor unit.
func Money(value decimal.Decimal, code string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, code).Currency()
	minor := value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
