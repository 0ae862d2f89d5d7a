package deals

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/etnz/deals/date"
)

// Ledger represents the list of all deals, in creation order.
type Ledger struct {
	deals []Deal
}

// NewLedger creates an empty ledger.
func NewLedger(deals ...Deal) *Ledger {
	return &Ledger{deals: slices.Clone(deals)}
}

// Len returns the number of deals in the ledger.
func (l *Ledger) Len() int { return len(l.deals) }

// Append adds deals at the end of the ledger.
func (l *Ledger) Append(deals ...Deal) { l.deals = append(l.deals, deals...) }

// Deals returns a copy of all deals in storage order.
func (l *Ledger) Deals() []Deal { return slices.Clone(l.deals) }

// All iterates over all deals in storage order.
func (l *Ledger) All() iter.Seq[Deal] {
	return func(yield func(Deal) bool) {
		for _, d := range l.deals {
			if !yield(d) {
				return
			}
		}
	}
}

// NextIndex returns the index the next deal created on day 'on' must use.
func (l *Ledger) NextIndex(on date.Date) int { return NextIndexForDate(l.deals, on) }

// Find returns the first deal with this key.
func (l *Ledger) Find(on date.Date, index int) (Deal, bool) {
	i := l.position(on, index)
	if i < 0 {
		return Deal{}, false
	}
	return l.deals[i], true
}

// Remove deletes the first deal with this key and returns it.
//
// Other deals of the same day keep their index, so a gap may appear.
func (l *Ledger) Remove(on date.Date, index int) (Deal, bool) {
	i := l.position(on, index)
	if i < 0 {
		return Deal{}, false
	}
	d := l.deals[i]
	l.deals = slices.Delete(l.deals, i, i+1)
	return d, true
}

func (l *Ledger) position(on date.Date, index int) int {
	return slices.IndexFunc(l.deals, func(d Deal) bool { return d.Date == on && d.Index == index })
}

// Validate checks the ledger consistency: indices are positive and every
// deal has members.
//
// Two deals may share a key, since a delete followed by a create reuses the
// count+1 index of the day. See Duplicates.
func (l *Ledger) Validate() error {
	var errs []error
	for i, d := range l.deals {
		if d.Index < 1 {
			errs = append(errs, fmt.Errorf("deal #%d: invalid index %d", i, d.Index))
		}
		if len(d.Members) == 0 {
			errs = append(errs, fmt.Errorf("deal #%d: no members", i))
		}
	}
	return errors.Join(errs...)
}

// Duplicates returns the keys held by more than one deal, in order of first
// appearance.
func (l *Ledger) Duplicates() []Key {
	count := make(map[Key]int, len(l.deals))
	var dups []Key
	for _, d := range l.deals {
		count[d.Key()]++
		if count[d.Key()] == 2 {
			dups = append(dups, d.Key())
		}
	}
	return dups
}
