package conversation

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/deals"
	"github.com/etnz/deals/date"
)

var today = date.New(2024, 7, 25)

func newBook(t *testing.T) *deals.Book {
	t.Helper()
	b := deals.NewBook(deals.NewFileStore(filepath.Join(t.TempDir(), "deals.json")))
	b.Today = func() date.Date { return today }
	return b
}

func TestConversation_HappyPath(t *testing.T) {
	c := New(today)
	answers := []string{"21.07", "QR", "10000", "2", "90", "#10 #12"}
	for i, a := range answers {
		f, ok := c.Field()
		if !ok || f != deals.Fields[i] {
			t.Fatalf("step %d: Field() = %v, %v, want %v", i, f, ok, deals.Fields[i])
		}
		if c.Prompt() == "" {
			t.Errorf("step %d: empty prompt", i)
		}
		if err := c.Answer(a); err != nil {
			t.Fatalf("Answer(%q) unexpected error: %v", a, err)
		}
	}
	if !c.Done() {
		t.Fatal("conversation should be done")
	}
	if c.Prompt() != "" {
		t.Errorf("Prompt() after done = %q, want empty", c.Prompt())
	}

	b := newBook(t)
	d, err := c.Commit(b)
	if err != nil {
		t.Fatalf("Commit() unexpected error: %v", err)
	}
	if d.Date != date.New(2024, 7, 21) || d.Index != 1 || len(d.Members) != 2 {
		t.Errorf("Commit() = %+v", d)
	}
}

func TestConversation_CommitAcrossMidnight(t *testing.T) {
	c := New(today)
	for _, a := range []string{"today", "QR", "100", "0", "1", "#1"} {
		if err := c.Answer(a); err != nil {
			t.Fatalf("Answer(%q) unexpected error: %v", a, err)
		}
	}
	b := newBook(t)
	b.Today = func() date.Date { return today.Add(1) }
	d, err := c.Commit(b)
	if err != nil {
		t.Fatalf("Commit() unexpected error: %v", err)
	}
	if d.Date != today {
		t.Errorf("Commit() dated the deal %v, want %v", d.Date, today)
	}
}

func TestConversation_RepromptOnlyFailingField(t *testing.T) {
	testCases := []struct {
		name  string
		field deals.Field
		bad   string
	}{
		{"date", deals.FieldDate, "tomorrow"},
		{"impossible date", deals.FieldDate, "31.02"},
		{"name", deals.FieldName, "   "},
		{"amount", deals.FieldAmount, "abc"},
		{"negative amount", deals.FieldAmount, "-5"},
		{"fee", deals.FieldFee, "x"},
		{"fee too large", deals.FieldFee, "100"},
		{"rate", deals.FieldRate, "0"},
		{"members", deals.FieldMembers, "alice bob"},
	}
	good := []string{"21.07", "QR", "10000", "2", "90", "#10"}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(today)
			for i, f := range deals.Fields {
				if f == tc.field {
					err := c.Answer(tc.bad)
					var fe *deals.FieldError
					if !errors.As(err, &fe) || fe.Field != tc.field {
						t.Fatalf("Answer(%q) = %v, want a FieldError on %v", tc.bad, err, tc.field)
					}
					if got, _ := c.Field(); got != tc.field {
						t.Fatalf("after a bad answer Field() = %v, want %v", got, tc.field)
					}
					if Hint(err) == "" {
						t.Errorf("Hint() is empty")
					}
				}
				if err := c.Answer(good[i]); err != nil {
					t.Fatalf("Answer(%q) unexpected error: %v", good[i], err)
				}
			}
			if !c.Done() {
				t.Error("conversation should be done")
			}
			raw := c.Raw()
			if raw.Date != "21.07" || raw.Name != "QR" || raw.Members != "#10" {
				t.Errorf("Raw() = %+v, earlier answers were lost", raw)
			}
		})
	}
}

func TestConversation_Cancel(t *testing.T) {
	c := New(today)
	if err := c.Answer("21.07"); err != nil {
		t.Fatal(err)
	}
	if err := c.Answer("/cancel"); !errors.Is(err, ErrCancelled) {
		t.Fatalf("Answer(/cancel) = %v, want ErrCancelled", err)
	}
	if _, ok := c.Field(); ok {
		t.Error("Field() should report the end of a cancelled conversation")
	}
	b := newBook(t)
	if _, err := c.Commit(b); !errors.Is(err, ErrCancelled) {
		t.Errorf("Commit() = %v, want ErrCancelled", err)
	}
	all, err := b.Deals()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Errorf("cancelled conversation saved %d deals", len(all))
	}
}

func TestConversation_CommitIncomplete(t *testing.T) {
	c := New(today)
	if _, err := c.Commit(newBook(t)); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Commit() = %v, want ErrIncomplete", err)
	}
}

func TestRun(t *testing.T) {
	b := newBook(t)
	in := strings.NewReader("today\nQR\n10000\nabc\n2\n90\n#10 #12\n")
	var out strings.Builder

	d, err := Run(in, &out, b)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if d.Date != today || d.Name != "QR" {
		t.Errorf("Run() = %+v", d)
	}
	// the fee prompt is shown twice
	if n := strings.Count(out.String(), prompts[deals.FieldFee]); n != 2 {
		t.Errorf("fee prompt shown %d times, want 2:\n%s", n, out.String())
	}
	if !strings.Contains(out.String(), hints[deals.FieldFee]) {
		t.Errorf("output misses the fee hint:\n%s", out.String())
	}
}

func TestRun_EndOfInput(t *testing.T) {
	b := newBook(t)
	var out strings.Builder
	if _, err := Run(strings.NewReader("21.07\nQR\n"), &out, b); !errors.Is(err, ErrCancelled) {
		t.Errorf("Run() = %v, want ErrCancelled", err)
	}
}
