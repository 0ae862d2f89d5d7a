package date

import (
	"fmt"
	"strings"
)

// Period is a kind of reporting window.
type Period int

const (
	Daily Period = iota
	Payroll
	Monthly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Payroll:
		return "payroll"
	case Monthly:
		return "monthly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(p)
	switch p {
	case "daily", "day":
		return Daily, nil
	case "payroll", "weekly", "week":
		return Payroll, nil
	case "monthly", "month":
		return Monthly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}
