package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/etnz/deals"
	"github.com/etnz/deals/date"
	"github.com/shopspring/decimal"
)

func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "deals.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_Empty(t *testing.T) {
	s := openTest(t)
	l, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := openTest(t)
	want := deals.NewLedger(
		deals.NewDeal(date.New(2024, 7, 22), 1, "SBP", D(5000), D(1.5), D(91.2), []string{"#3"}),
		deals.NewDeal(date.New(2024, 7, 21), 1, "QR", D(10000), D(2), D(90), []string{"#10", "#12", "#10"}),
	)
	if err := s.Save(want); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != want.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), want.Len())
	}
	for i, d := range got.Deals() {
		if !d.Equal(want.Deals()[i]) {
			t.Errorf("deal %d = %+v, want %+v", i, d, want.Deals()[i])
		}
	}
}

func TestStore_SaveReplaces(t *testing.T) {
	s := openTest(t)
	first := deals.NewLedger(
		deals.NewDeal(date.New(2024, 7, 21), 1, "a", D(1), D(0), D(1), []string{"#1"}),
		deals.NewDeal(date.New(2024, 7, 21), 2, "b", D(1), D(0), D(1), []string{"#1"}),
	)
	if err := s.Save(first); err != nil {
		t.Fatal(err)
	}
	first.Remove(date.New(2024, 7, 21), 1)
	if err := s.Save(first); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", got.Len())
	}
	if _, ok := got.Find(date.New(2024, 7, 21), 2); !ok {
		t.Errorf("deal #2 should keep its index")
	}
}

func TestStore_FailedSaveIsAtomic(t *testing.T) {
	s := openTest(t)
	ok := deals.NewLedger(deals.NewDeal(date.New(2024, 7, 21), 1, "a", D(1), D(0), D(1), []string{"#1"}))
	if err := s.Save(ok); err != nil {
		t.Fatal(err)
	}
	// any insert of a deal named "boom" fails, after "b" has been written.
	_, err := s.db.Exec(`CREATE TRIGGER boom BEFORE INSERT ON deals WHEN NEW.name = 'boom'
		BEGIN SELECT RAISE(ABORT, 'boom'); END`)
	if err != nil {
		t.Fatal(err)
	}
	bad := deals.NewLedger(
		deals.NewDeal(date.New(2024, 7, 22), 1, "b", D(1), D(0), D(1), []string{"#1"}),
		deals.NewDeal(date.New(2024, 7, 22), 2, "boom", D(1), D(0), D(1), []string{"#1"}),
	)
	if err := s.Save(bad); !errors.Is(err, deals.ErrPersistence) {
		t.Fatalf("Save() error = %v, want ErrPersistence", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 || got.Deals()[0].Name != "a" {
		t.Errorf("failed Save() altered the database: %+v", got.Deals())
	}
}

func TestStore_SharedKey(t *testing.T) {
	s := openTest(t)
	d := date.New(2024, 7, 21)
	l := deals.NewLedger(
		deals.NewDeal(d, 2, "b", D(1), D(0), D(1), []string{"#1"}),
		deals.NewDeal(d, 2, "c", D(1), D(0), D(1), []string{"#1"}),
	)
	if err := s.Save(l); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 || got.Deals()[0].Name != "b" || got.Deals()[1].Name != "c" {
		t.Errorf("Load() = %+v, want b then c", got.Deals())
	}
}

func TestStore_WithBook(t *testing.T) {
	b := deals.NewBook(openTest(t))
	b.Today = func() date.Date { return date.New(2024, 7, 25) }
	for i := 1; i <= 3; i++ {
		d, err := b.CreateDeal(deals.RawDeal{Date: "today", Name: "QR", Amount: "100", Fee: "0", Rate: "1", Members: "#1"})
		if err != nil {
			t.Fatal(err)
		}
		if d.Index != i {
			t.Errorf("index = %d, want %d", d.Index, i)
		}
	}
	if _, err := b.Delete(date.New(2024, 7, 25), 2); err != nil {
		t.Fatal(err)
	}
	r, err := b.Week(date.Date{})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Lines) != 2 {
		t.Errorf("week has %d deals, want 2", len(r.Lines))
	}
}

func TestStore_WithBook_CreateAfterDelete(t *testing.T) {
	b := deals.NewBook(openTest(t))
	b.Today = func() date.Date { return date.New(2024, 7, 25) }
	on := date.New(2024, 7, 21)
	create := func(name string) deals.Deal {
		t.Helper()
		d, err := b.CreateDeal(deals.RawDeal{Date: "21.07", Name: name, Amount: "100", Fee: "0", Rate: "1", Members: "#1"})
		if err != nil {
			t.Fatalf("CreateDeal(%s) error: %v", name, err)
		}
		return d
	}
	create("a")
	create("b")
	if _, err := b.Delete(on, 1); err != nil {
		t.Fatal(err)
	}
	if d := create("c"); d.Index != 2 {
		t.Errorf("new deal index = %d, want 2", d.Index)
	}
	deleted, err := b.Delete(on, 2)
	if err != nil {
		t.Fatal(err)
	}
	if deleted.Name != "b" {
		t.Errorf("Delete() removed %q, want the first match b", deleted.Name)
	}
	left, err := b.Deals()
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 1 || left[0].Name != "c" || left[0].Index != 2 {
		t.Errorf("deals left = %+v, want c #2", left)
	}
}
