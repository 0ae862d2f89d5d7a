package deals

import (
	"github.com/etnz/deals/date"
	"github.com/shopspring/decimal"
)

// Report summarizes the deals over a range of days.
type Report struct {
	Range      date.Range
	Lines      []Deal          // deals in storage order
	TotalShare decimal.Decimal // sum of SharePerMember over Lines
	Members    []MemberShare   // per member totals, in order of first appearance
	// Empty is true when no deal matched, the caller should render a
	// "nothing found" message rather than a zero report.
	Empty bool
}

// MemberShare is the total share earned by a member over a report.
type MemberShare struct {
	Member string          `json:"member"`
	Deals  int             `json:"deals"`
	Share  decimal.Decimal `json:"share"`
}

// FilterByRange returns the deals made within r, boundaries included.
func FilterByRange(deals []Deal, r date.Range) []Deal {
	var res []Deal
	for _, d := range deals {
		if r.Contains(d.Date) {
			res = append(res, d)
		}
	}
	return res
}

// FilterByExactDate returns the deals made on day 'on'.
func FilterByExactDate(deals []Deal, on date.Date) []Deal {
	return FilterByRange(deals, date.Range{From: on, To: on})
}

// Summarize computes the report of 'deals' for the range r.
func Summarize(r date.Range, deals []Deal) Report {
	report := Report{
		Range:      r,
		Lines:      deals,
		TotalShare: decimal.Zero,
		Empty:      len(deals) == 0,
	}
	pos := make(map[string]int)
	for _, d := range deals {
		report.TotalShare = report.TotalShare.Add(d.SharePerMember)
		counted := make(map[string]bool)
		for _, m := range d.Members {
			i, ok := pos[m]
			if !ok {
				i = len(report.Members)
				pos[m] = i
				report.Members = append(report.Members, MemberShare{Member: m, Share: decimal.Zero})
			}
			// a member listed twice in a deal gets two shares.
			report.Members[i].Share = report.Members[i].Share.Add(d.SharePerMember)
			if !counted[m] {
				report.Members[i].Deals++
				counted[m] = true
			}
		}
	}
	return report
}
