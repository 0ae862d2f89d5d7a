package deals

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/etnz/deals/date"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	memberRE = regexp.MustCompile(`#\d+`)
	validate = validator.New()
)

// NextIndexForDate returns the count of deals on day 'on' plus one.
func NextIndexForDate(deals []Deal, on date.Date) int {
	n := 0
	for _, d := range deals {
		if d.Date == on {
			n++
		}
	}
	return n + 1
}

// ParseAmount reads a decimal number written with either '.' or ',' as
// decimal separator.
func ParseAmount(text string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(text), ",", "."))
}

// ExtractMembers returns all "#<digits>" tokens found in text, in order.
// Everything else is ignored and duplicates are kept.
func ExtractMembers(text string) []string {
	return memberRE.FindAllString(text, -1)
}

// RawDeal holds the six raw inputs of a deal, in prompt order.
type RawDeal struct {
	Date    string `json:"date"`
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	Fee     string `json:"fee"`
	Rate    string `json:"rate"`
	Members string `json:"members"`
}

// Input is a parsed and validated RawDeal.
type Input struct {
	Date    date.Date
	Name    string
	Gross   decimal.Decimal
	Fee     decimal.Decimal
	Rate    decimal.Decimal
	Members []string
}

// Parse validates all fields in prompt order and returns the first
// failure as a *FieldError.
func (r RawDeal) Parse(today date.Date) (Input, error) {
	var in Input
	for _, f := range Fields {
		if err := r.parseField(f, today, &in); err != nil {
			return Input{}, err
		}
	}
	return in, nil
}

// ParseField validates a single field, so that a front-end can re-prompt
// for it right away.
func (r RawDeal) ParseField(f Field, today date.Date) error {
	var in Input
	return r.parseField(f, today, &in)
}

func (r RawDeal) parseField(f Field, today date.Date, in *Input) error {
	switch f {
	case FieldDate:
		d, err := date.ParseShorthand(r.Date, today)
		switch {
		case errors.Is(err, date.ErrInvalidDate):
			return &FieldError{Field: f, Err: fmt.Errorf("%w: %w", ErrValidation, err)}
		case err != nil:
			return &FieldError{Field: f, Err: fmt.Errorf("%w: %w", ErrParse, err)}
		}
		in.Date = d
	case FieldName:
		in.Name = strings.TrimSpace(r.Name)
		if err := validate.Var(in.Name, "required"); err != nil {
			return fieldErr(f, ErrValidation, "name is required")
		}
	case FieldAmount:
		v, err := parsePositive(f, r.Amount)
		if err != nil {
			return err
		}
		in.Gross = v
	case FieldFee:
		v, err := ParseAmount(r.Fee)
		if err != nil {
			return fieldErr(f, ErrParse, "%q is not a number", r.Fee)
		}
		if v.IsNegative() || v.GreaterThanOrEqual(hundred) {
			return fieldErr(f, ErrValidation, "%s%% is not in [0, 100)", v)
		}
		in.Fee = v
	case FieldRate:
		v, err := parsePositive(f, r.Rate)
		if err != nil {
			return err
		}
		in.Rate = v
	case FieldMembers:
		in.Members = ExtractMembers(r.Members)
		if err := validate.Var(in.Members, "min=1,dive,startswith=#"); err != nil {
			return fieldErr(f, ErrValidation, "at least one #member is required")
		}
	}
	return nil
}

func parsePositive(f Field, text string) (decimal.Decimal, error) {
	v, err := ParseAmount(text)
	if err != nil {
		return decimal.Decimal{}, fieldErr(f, ErrParse, "%q is not a number", text)
	}
	if !v.IsPositive() {
		return decimal.Decimal{}, fieldErr(f, ErrValidation, "%s must be positive", v)
	}
	return v, nil
}
