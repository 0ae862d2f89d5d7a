package deals

import (
	"github.com/etnz/deals/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	hundred = decimal.NewFromInt(100)
	// PoolShare is the part of the converted amount shared by the members.
	PoolShare = decimal.RequireFromString("0.25")
)

// Deal is one recorded deposit.
//
// (Date, Index) identifies a deal in the ledger. All the amounts after
// ExchangeRate are derived from the inputs when the deal is created.
type Deal struct {
	Date           date.Date       `json:"date"`
	Index          int             `json:"index"`
	Name           string          `json:"name"`
	GrossAmount    decimal.Decimal `json:"grossAmount"`     // in local currency
	FeePercent     decimal.Decimal `json:"feePercent"`      // 2.5 means 2.5%
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`    // local currency per reference currency unit
	NetAmount      decimal.Decimal `json:"netAmount"`       // in local currency
	Converted      decimal.Decimal `json:"convertedAmount"` // in reference currency
	Pool           decimal.Decimal `json:"pool"`            // in reference currency
	SharePerMember decimal.Decimal `json:"sharePerMember"`  // in reference currency
	Members        []string        `json:"members"`
}

// NewDeal computes all the derived amounts of a deal.
//
// rate must be positive and members not empty, see RawDeal.Parse.
func NewDeal(on date.Date, index int, name string, gross, fee, rate decimal.Decimal, members []string) Deal {
	net := gross.Mul(decimal.NewFromInt(1).Sub(fee.Div(hundred)))
	converted := net.Div(rate)
	pool := converted.Mul(PoolShare)
	return Deal{
		Date:           on,
		Index:          index,
		Name:           name,
		GrossAmount:    gross,
		FeePercent:     fee,
		ExchangeRate:   rate,
		NetAmount:      net,
		Converted:      converted,
		Pool:           pool,
		SharePerMember: pool.Div(decimal.NewFromInt(int64(len(members)))),
		Members:        append([]string(nil), members...),
	}
}

// Key returns the (date, index) pair identifying the deal.
func (d Deal) Key() Key { return Key{Date: d.Date, Index: d.Index} }

// Key is the logical primary key of a deal.
type Key struct {
	Date  date.Date
	Index int
}

// Equal reports whether both deals hold the same values.
func (d Deal) Equal(x Deal) bool {
	if d.Date != x.Date || d.Index != x.Index || d.Name != x.Name || len(d.Members) != len(x.Members) {
		return false
	}
	for i := range d.Members {
		if d.Members[i] != x.Members[i] {
			return false
		}
	}
	return d.GrossAmount.Equal(x.GrossAmount) &&
		d.FeePercent.Equal(x.FeePercent) &&
		d.ExchangeRate.Equal(x.ExchangeRate) &&
		d.NetAmount.Equal(x.NetAmount) &&
		d.Converted.Equal(x.Converted) &&
		d.Pool.Equal(x.Pool) &&
		d.SharePerMember.Equal(x.SharePerMember)
}
