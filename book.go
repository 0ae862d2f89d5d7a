package deals

import (
	"fmt"
	"sync"
	"time"

	"github.com/etnz/deals/date"
)

// Book gives access to a ledger persisted in a Store.
//
// Every mutation loads the whole ledger, applies the change and saves it
// back while holding an exclusive lock, so concurrent calls cannot lose
// updates. Queries share a read lock and see a consistent snapshot.
type Book struct {
	store Store
	mu    sync.RWMutex
	// Today returns the current day. It defaults to date.Today.
	Today func() date.Date
}

// NewBook returns a Book over the given store.
func NewBook(store Store) *Book {
	return &Book{store: store, Today: date.Today}
}

// update runs fn on the loaded ledger and saves it, the lock is released
// on every path.
func (b *Book) update(fn func(*Ledger) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, err := b.store.Load()
	if err != nil {
		return err
	}
	if err := fn(l); err != nil {
		return err
	}
	return b.store.Save(l)
}

// view runs fn on a freshly loaded ledger.
func (b *Book) view(fn func(*Ledger) error) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	l, err := b.store.Load()
	if err != nil {
		return err
	}
	return fn(l)
}

// CreateDeal validates the raw inputs, derives the deal and persists it.
//
// Validation failures are *FieldError and nothing is saved. The deal is
// returned only once it has been saved.
func (b *Book) CreateDeal(raw RawDeal) (Deal, error) {
	in, err := raw.Parse(b.Today())
	if err != nil {
		return Deal{}, err
	}
	return b.Add(in)
}

// Add persists a new deal from already validated inputs.
func (b *Book) Add(in Input) (Deal, error) {
	if len(in.Members) == 0 {
		return Deal{}, &FieldError{Field: FieldMembers, Err: ErrValidation}
	}
	if !in.Rate.IsPositive() {
		return Deal{}, &FieldError{Field: FieldRate, Err: ErrValidation}
	}
	var deal Deal
	err := b.update(func(l *Ledger) error {
		deal = NewDeal(in.Date, l.NextIndex(in.Date), in.Name, in.Gross, in.Fee, in.Rate, in.Members)
		l.Append(deal)
		return nil
	})
	if err != nil {
		return Deal{}, err
	}
	return deal, nil
}

// Delete removes the deal identified by (on, index).
//
// It returns ErrNotFound, and writes nothing, if there is no such deal.
// The other deals of the day are not renumbered.
func (b *Book) Delete(on date.Date, index int) (Deal, error) {
	var deleted Deal
	err := b.update(func(l *Ledger) error {
		d, ok := l.Remove(on, index)
		if !ok {
			return fmt.Errorf("deal %s #%d: %w", on, index, ErrNotFound)
		}
		deleted = d
		return nil
	})
	if err != nil {
		return Deal{}, err
	}
	return deleted, nil
}

// Deals returns a copy of all the deals.
func (b *Book) Deals() ([]Deal, error) {
	var deals []Deal
	err := b.view(func(l *Ledger) error {
		deals = l.Deals()
		return nil
	})
	return deals, err
}

// Range reports on all the deals in r, boundaries included.
func (b *Book) Range(r date.Range) (Report, error) {
	var report Report
	err := b.view(func(l *Ledger) error {
		report = Summarize(r, FilterByRange(l.deals, r))
		return nil
	})
	return report, err
}

// OnDate reports on the deals of a single day.
func (b *Book) OnDate(on date.Date) (Report, error) {
	return b.Range(date.Range{From: on, To: on})
}

// Week reports on the payroll week containing ref, or the current one if
// ref is zero.
func (b *Book) Week(ref date.Date) (Report, error) {
	if ref.IsZero() {
		ref = b.Today()
	}
	return b.Range(date.PayrollWeek(ref))
}

// Month reports on a month of the current year.
func (b *Book) Month(month int) (Report, error) {
	r, err := date.MonthRange(b.Today().Year(), time.Month(month))
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return b.Range(r)
}

// Rewrite loads and saves the ledger back, in canonical form. An
// inconsistent ledger is not saved and its errors are returned, see
// Ledger.Validate. Keys shared by several deals do not prevent the rewrite,
// they are returned so the caller can warn about them.
func (b *Book) Rewrite() (dups []Key, err error) {
	err = b.update(func(l *Ledger) error {
		if err := l.Validate(); err != nil {
			return err
		}
		dups = l.Duplicates()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dups, nil
}
