package deals

import (
	"testing"

	"github.com/etnz/deals/date"
)

func TestNewDeal(t *testing.T) {
	d := NewDeal(date.New(2024, 7, 21), 1, "QR", D(10000), D(2), D(90), []string{"#10", "#12"})

	assertNear(t, "NetAmount", d.NetAmount, 9800)
	assertNear(t, "Converted", d.Converted, 9800.0/90)
	assertNear(t, "Pool", d.Pool, 9800.0/90*0.25)
	assertNear(t, "SharePerMember", d.SharePerMember, 9800.0/90*0.25/2)
}

func TestNewDeal_Formulas(t *testing.T) {
	testCases := []struct {
		name    string
		gross   float64
		fee     float64
		rate    float64
		members []string
	}{
		{"no fee", 5000, 0, 100, []string{"#1"}},
		{"fractional fee", 12345.67, 2.5, 91.3, []string{"#1", "#2", "#3"}},
		{"duplicates count", 1000, 10, 80, []string{"#7", "#7"}},
		{"large amount", 1e7, 3.75, 87.25, []string{"#1", "#2", "#3", "#4", "#5", "#6", "#7"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDeal(date.New(2024, 7, 21), 1, tc.name, D(tc.gross), D(tc.fee), D(tc.rate), tc.members)
			net := tc.gross * (1 - tc.fee/100)
			conv := net / tc.rate
			pool := conv * 0.25
			assertNear(t, "NetAmount", d.NetAmount, net)
			assertNear(t, "Converted", d.Converted, conv)
			assertNear(t, "Pool", d.Pool, pool)
			assertNear(t, "SharePerMember", d.SharePerMember, pool/float64(len(tc.members)))
		})
	}
}

func TestNewDeal_CopiesMembers(t *testing.T) {
	members := []string{"#1", "#2"}
	d := NewDeal(date.New(2024, 7, 21), 1, "QR", D(100), D(0), D(1), members)
	members[0] = "#99"
	if d.Members[0] != "#1" {
		t.Errorf("deal members share the caller's slice")
	}
}

func TestDeal_Equal(t *testing.T) {
	a := NewDeal(date.New(2024, 7, 21), 1, "QR", D(100), D(1), D(2), []string{"#1"})
	b := a
	b.Members = []string{"#1"}
	if !a.Equal(b) {
		t.Errorf("identical deals should be equal")
	}
	b.Members = []string{"#2"}
	if a.Equal(b) {
		t.Errorf("deals with different members should differ")
	}
}
