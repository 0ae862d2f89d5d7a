package date

import (
	"fmt"
	"time"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange return a well known period containing d.
func NewRange(d Date, period Period) Range {
	switch period {
	case Daily:
		return Range{From: d, To: d}
	case Payroll:
		return PayrollWeek(d)
	case Monthly:
		r, _ := MonthRange(d.Year(), d.Month()) // d is a valid day, hence its month is valid too.
		return r
	default:
		panic(fmt.Sprintf("unknown period %d", period))
	}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days in the range, 0 if the range is reversed.
func (r Range) Days() int {
	if r.To.Before(r.From) {
		return 0
	}
	return int(r.To.time().Sub(r.From.time())/(24*time.Hour)) + 1
}

// String returns the range in the short D.M form, e.g. "21.07–27.07".
func (r Range) String() string {
	if r.From == r.To {
		return r.From.Format(ShortFormat)
	}
	return r.From.Format(ShortFormat) + "–" + r.To.Format(ShortFormat)
}

// PayrollWeek returns the salary week containing ref: it starts on the
// most recent Tuesday on or before ref and ends on the following Monday.
func PayrollWeek(ref Date) Range {
	offset := (int(ref.Weekday()) - int(time.Tuesday) + 7) % 7
	start := ref.Add(-offset)
	return Range{From: start, To: start.Add(6)}
}

// MonthRange returns the range of all days of the month.
func MonthRange(year int, month time.Month) (Range, error) {
	if month < time.January || month > time.December {
		return Range{}, fmt.Errorf("month %d: %w", month, ErrInvalidDate)
	}
	// day 0 of next month is the last day of this one, December included.
	return Range{From: New(year, month, 1), To: New(year, month+1, 0)}, nil
}
