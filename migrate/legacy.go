package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/deals"
	"github.com/etnz/deals/date"
	"github.com/shopspring/decimal"
)

// DecodeLegacy reads a legacy deals file. Every deal is kept as decoded
// JSON, numbers as json.Number.
func DecodeLegacy(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var legacy []any
	if err := dec.Decode(&legacy); err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", path, err)
	}
	return legacy, nil
}

// Convert builds a ledger from legacy deals, in the same order.
func Convert(legacy []any) (*deals.Ledger, error) {
	l := deals.NewLedger()
	for i, obj := range legacy {
		d, err := convert(obj)
		if err != nil {
			return nil, fmt.Errorf("deal #%d: %w", i+1, err)
		}
		l.Append(d)
	}
	return l, nil
}

// Check returns a message for every legacy deal missing from l or whose
// share differs by more than tolerance.
func Check(legacy []any, l *deals.Ledger, tolerance float64) []string {
	var mismatches []string
	for i, obj := range legacy {
		want, err := convert(obj)
		if err != nil {
			mismatches = append(mismatches, fmt.Sprintf("deal #%d: %v", i+1, err))
			continue
		}
		got, ok := l.Find(want.Date, want.Index)
		if !ok {
			mismatches = append(mismatches, fmt.Sprintf("deal %s #%d %q is missing", want.Date, want.Index, want.Name))
			continue
		}
		share, err := number(obj, "$.share")
		if err != nil {
			mismatches = append(mismatches, fmt.Sprintf("deal %s #%d: %v", want.Date, want.Index, err))
			continue
		}
		if !almostEqual(share.InexactFloat64(), got.SharePerMember.InexactFloat64(), tolerance) {
			mismatches = append(mismatches, fmt.Sprintf("deal %s #%d %q: share %s, legacy share %s", want.Date, want.Index, want.Name, got.SharePerMember, share))
		}
	}
	return mismatches
}

func convert(obj any) (deals.Deal, error) {
	iso, err := str(obj, "$.date_iso")
	if err != nil {
		return deals.Deal{}, err
	}
	on, err := date.Parse(iso)
	if err != nil {
		return deals.Deal{}, fmt.Errorf("invalid date_iso %q: %w", iso, err)
	}
	index, err := number(obj, "$.index")
	if err != nil {
		return deals.Deal{}, err
	}
	name, err := str(obj, "$.name")
	if err != nil {
		return deals.Deal{}, err
	}
	gross, err := number(obj, "$.rub")
	if err != nil {
		return deals.Deal{}, err
	}
	fee, err := number(obj, "$.fee")
	if err != nil {
		return deals.Deal{}, err
	}
	rate, err := number(obj, "$.rate")
	if err != nil {
		return deals.Deal{}, err
	}
	if !rate.IsPositive() {
		return deals.Deal{}, fmt.Errorf("invalid rate %s", rate)
	}
	members, err := jsonpath.Get("$.members", obj)
	if err != nil {
		return deals.Deal{}, fmt.Errorf("reading members: %w", err)
	}
	list, ok := members.([]any)
	if !ok {
		return deals.Deal{}, fmt.Errorf("members %v is not a list", members)
	}
	var ms []string
	for _, m := range list {
		s, ok := m.(string)
		if !ok {
			return deals.Deal{}, fmt.Errorf("member %v is not a string", m)
		}
		ms = append(ms, s)
	}
	if len(ms) == 0 {
		return deals.Deal{}, fmt.Errorf("deal %s #%s has no member", on, index)
	}
	return deals.NewDeal(on, int(index.IntPart()), name, gross, fee, rate, ms), nil
}

// get returns the single value at path.
func get(obj any, path string) (any, error) {
	v, err := jsonpath.Get(path, obj)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if list, ok := v.([]any); ok && len(list) > 0 {
		v = list[0]
	}
	return v, nil
}

func str(obj any, path string) (string, error) {
	v, err := get(obj, path)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string: %v", path, v)
	}
	return s, nil
}

func number(obj any, path string) (decimal.Decimal, error) {
	v, err := get(obj, path)
	if err != nil {
		return decimal.Decimal{}, err
	}
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%q is not a number: %v", path, v)
	}
}

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
