// Package date implements day-granularity dates and the date ranges used
// to report on deals: exact days, payroll weeks and calendar months.
package date

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// ShortFormat is the day.month format used in chat-like answers.
const ShortFormat = "02.01"

var (
	// ErrMalformed is returned when a text does not look like a date at all.
	ErrMalformed = errors.New("malformed date")
	// ErrInvalidDate is returned when a text looks like a date but the day
	// does not exist in the calendar (e.g. 31.02).
	ErrInvalidDate = errors.New("invalid date")
)

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Today returns the current UTC calendar date.
func Today() Date { return New(time.Now().UTC().Date()) }

// Parse parses a Date from its ISO form. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, strings.TrimSpace(str))
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

var shorthandRE = regexp.MustCompile(`^(\d{1,2})[./](\d{1,2})$`)

// todayWords are the words accepted as "today", in any case.
var todayWords = map[string]bool{"today": true, "сегодня": true}

// ParseShorthand parses the day-first shorthand users type: "today" (or
// "сегодня"), "21.07" or "21/7".
//
// There is no year component: the year is always the one of 'today', so a
// ledger spanning several years cannot be addressed with this syntax.
func ParseShorthand(text string, today Date) (Date, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if todayWords[text] {
		return today, nil
	}
	match := shorthandRE.FindStringSubmatch(text)
	if match == nil {
		return Date{}, fmt.Errorf("%q want D.M or D/M: %w", text, ErrMalformed)
	}
	// cannot fail, the regexp only let digits through.
	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	return valid(today.Year(), month, day)
}

// valid returns the date if year, month and day designate an existing day.
func valid(year, month, day int) (Date, error) {
	d := New(year, time.Month(month), day)
	if d.y != year || int(d.m) != month || d.d != day {
		return Date{}, fmt.Errorf("%02d.%02d.%d: %w", day, month, year, ErrInvalidDate)
	}
	return d, nil
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
