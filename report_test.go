package deals

import (
	"testing"

	"github.com/etnz/deals/date"
)

func sampleDeals() []Deal {
	return []Deal{
		NewDeal(date.New(2024, 7, 20), 1, "SBP", D(1000), D(0), D(100), []string{"#1"}),      // share 2.5
		NewDeal(date.New(2024, 7, 21), 1, "QR", D(2000), D(0), D(100), []string{"#1", "#2"}), // share 2.5
		NewDeal(date.New(2024, 7, 23), 1, "QR", D(4000), D(0), D(100), []string{"#2"}),       // share 10
		NewDeal(date.New(2024, 7, 21), 2, "SBP", D(800), D(0), D(100), []string{"#3", "#3"}), // share 1
	}
}

func TestFilterByRange(t *testing.T) {
	deals := sampleDeals()
	testCases := []struct {
		name      string
		r         date.Range
		wantNames []string
	}{
		{"inclusive bounds", date.Range{From: date.New(2024, 7, 20), To: date.New(2024, 7, 21)}, []string{"SBP", "QR", "SBP"}},
		{"single day", date.Range{From: date.New(2024, 7, 23), To: date.New(2024, 7, 23)}, []string{"QR"}},
		{"nothing", date.Range{From: date.New(2024, 8, 1), To: date.New(2024, 8, 31)}, nil},
		{"reversed", date.Range{From: date.New(2024, 7, 23), To: date.New(2024, 7, 20)}, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterByRange(deals, tc.r)
			if len(got) != len(tc.wantNames) {
				t.Fatalf("FilterByRange() returned %d deals, want %d", len(got), len(tc.wantNames))
			}
			for i, d := range got {
				if d.Name != tc.wantNames[i] {
					t.Errorf("deal %d = %q, want %q (storage order)", i, d.Name, tc.wantNames[i])
				}
			}
		})
	}
}

func TestFilterByExactDate(t *testing.T) {
	got := FilterByExactDate(sampleDeals(), date.New(2024, 7, 21))
	if len(got) != 2 || got[0].Index != 1 || got[1].Index != 2 {
		t.Errorf("FilterByExactDate() = %v", got)
	}
}

func TestSummarize(t *testing.T) {
	r := date.Range{From: date.New(2024, 7, 1), To: date.New(2024, 7, 31)}
	report := Summarize(r, sampleDeals())
	if report.Empty {
		t.Fatal("report should not be empty")
	}
	assertNear(t, "TotalShare", report.TotalShare, 2.5+2.5+10+1)
	if len(report.Lines) != 4 {
		t.Errorf("Lines = %d, want 4", len(report.Lines))
	}

	want := []struct {
		member string
		deals  int
		share  float64
	}{
		{"#1", 2, 5},
		{"#2", 2, 12.5},
		{"#3", 1, 2}, // listed twice in one deal
	}
	if len(report.Members) != len(want) {
		t.Fatalf("Members = %v", report.Members)
	}
	for i, w := range want {
		got := report.Members[i]
		if got.Member != w.member || got.Deals != w.deals {
			t.Errorf("Members[%d] = %v, want %v", i, got, w)
		}
		assertNear(t, "share of "+w.member, got.Share, w.share)
	}
}

func TestSummarize_Empty(t *testing.T) {
	report := Summarize(date.Range{}, nil)
	if !report.Empty {
		t.Error("empty report should say so")
	}
	if !report.TotalShare.IsZero() {
		t.Errorf("TotalShare = %v, want 0", report.TotalShare)
	}
	zero := Summarize(date.Range{}, []Deal{{Members: []string{"#1"}}})
	if zero.Empty {
		t.Error("a report of a zero deal is not empty")
	}
}
