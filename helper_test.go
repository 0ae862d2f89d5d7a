package deals

import (
	"math"
	"testing"

	"github.com/etnz/deals/date"
	"github.com/shopspring/decimal"
)

// D is a helper for test to create decimals from const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// assertNear fails if got is not within 1e-9 of want.
func assertNear(t *testing.T, name string, got decimal.Decimal, want float64) {
	t.Helper()
	if math.Abs(got.InexactFloat64()-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// memStore is an in-memory Store that counts writes.
type memStore struct {
	deals   []Deal
	saves   int
	saveErr error
}

func (s *memStore) Load() (*Ledger, error) { return NewLedger(s.deals...), nil }

func (s *memStore) Save(l *Ledger) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.deals = l.Deals()
	return nil
}

// newTestBook returns a book over a memory store, frozen on 2024-07-25 (a Thursday).
func newTestBook() (*Book, *memStore) {
	s := &memStore{}
	b := NewBook(s)
	b.Today = func() date.Date { return date.New(2024, 7, 25) }
	return b, s
}
