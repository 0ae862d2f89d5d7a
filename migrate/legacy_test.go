package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/deals"
	"github.com/etnz/deals/date"
	"github.com/shopspring/decimal"
)

const legacyDeals = `[
  {
    "date_iso": "2024-07-21",
    "index": 1,
    "name": "QR",
    "rub": 10000,
    "fee": 2.0,
    "rate": 90.0,
    "clean_rub": 9800.0,
    "usd": 108.88888888888889,
    "pool": 27.22222222222222,
    "share": 13.61111111111111,
    "members": ["#10", "#12"]
  },
  {
    "date_iso": "2024-07-21",
    "index": 2,
    "name": "СБП",
    "rub": 5000,
    "fee": 0,
    "rate": 100,
    "clean_rub": 5000,
    "usd": 50,
    "pool": 12.5,
    "share": 12.5,
    "members": ["#10"]
  }
]`

func writeLegacy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legacy.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvert(t *testing.T) {
	legacy, err := DecodeLegacy(writeLegacy(t, legacyDeals))
	if err != nil {
		t.Fatal(err)
	}
	l, err := Convert(legacy)
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Convert() got %d deals, want 2", l.Len())
	}
	d, ok := l.Find(date.New(2024, 7, 21), 2)
	if !ok {
		t.Fatal("deal #2 is missing")
	}
	if d.Name != "СБП" || !d.SharePerMember.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("deal #2 = %+v", d)
	}
	if errs := Check(legacy, l, 1e-6); len(errs) != 0 {
		t.Errorf("Check() = %v, want no mismatch", errs)
	}
}

func TestConvert_Errors(t *testing.T) {
	testCases := []struct {
		name string
		deal string
		want string
	}{
		{"no date", `{"index":1,"name":"QR","rub":1,"fee":0,"rate":1,"members":["#1"]}`, "date_iso"},
		{"bad date", `{"date_iso":"21.07","index":1,"name":"QR","rub":1,"fee":0,"rate":1,"members":["#1"]}`, "invalid date_iso"},
		{"text amount", `{"date_iso":"2024-07-21","index":1,"name":"QR","rub":"lots","fee":0,"rate":1,"members":["#1"]}`, "not a number"},
		{"zero rate", `{"date_iso":"2024-07-21","index":1,"name":"QR","rub":1,"fee":0,"rate":0,"members":["#1"]}`, "invalid rate"},
		{"no members", `{"date_iso":"2024-07-21","index":1,"name":"QR","rub":1,"fee":0,"rate":1,"members":[]}`, "no member"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			legacy, err := DecodeLegacy(writeLegacy(t, "["+tc.deal+"]"))
			if err != nil {
				t.Fatal(err)
			}
			_, err = Convert(legacy)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Convert() = %v, want an error containing %q", err, tc.want)
			}
		})
	}
}

func TestCheck_Mismatch(t *testing.T) {
	legacy, err := DecodeLegacy(writeLegacy(t, legacyDeals))
	if err != nil {
		t.Fatal(err)
	}
	on := date.New(2024, 7, 21)
	l := deals.NewLedger(
		deals.NewDeal(on, 1, "QR", decimal.NewFromInt(10000), decimal.NewFromInt(2), decimal.NewFromInt(80), []string{"#10", "#12"}),
	)
	errs := Check(legacy, l, 1e-6)
	if len(errs) != 2 {
		t.Fatalf("Check() = %v, want 2 mismatches", errs)
	}
	if !strings.Contains(errs[0], "legacy share") || !strings.Contains(errs[1], "missing") {
		t.Errorf("Check() = %v", errs)
	}
}

func TestDecodeLegacy_Empty(t *testing.T) {
	legacy, err := DecodeLegacy(writeLegacy(t, "  \n"))
	if err != nil || len(legacy) != 0 {
		t.Errorf("DecodeLegacy(empty) = %v, %v", legacy, err)
	}
}
