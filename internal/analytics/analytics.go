// Package analytics holds the pure portfolio calculations: growth rates,
// summaries and per-holding performance. Nothing here touches storage and
// nothing here returns an error; degenerate inputs produce a zero result.
package analytics

import (
	"math"

	"wealthdesk/internal/models"
)

// DaysPerYear converts elapsed days into fractional years.
const DaysPerYear = 365.25

// CAGR returns the compound annual growth rate, in percent, of moving from
// initial to current over years. It returns 0 when initial <= 0 or
// years <= 0. A negative ratio raised to a fractional power yields NaN.
func CAGR(initial, current, years float64) float64 {
	if initial <= 0 || years <= 0 {
		return 0
	}
	return (math.Pow(current/initial, 1/years) - 1) * 100
}

// XIRRApprox is the annualized return, in percent, for a single cash flow
// invested days ago. It is CAGR over days/DaysPerYear and deliberately not a
// money-weighted IRR over a cash-flow series.
func XIRRApprox(initial, current float64, days int) float64 {
	if initial <= 0 || days <= 0 {
		return 0
	}
	return CAGR(initial, current, float64(days)/DaysPerYear)
}

// Days returns the whole days elapsed from from to to. It is negative when
// to is before from.
func Days(from, to models.Date) int {
	return int(to.Time().Sub(from.Time()).Hours() / 24)
}

// Years returns the days elapsed from from to to in fractional years.
func Years(from, to models.Date) float64 {
	return float64(Days(from, to)) / DaysPerYear
}

// AbsoluteReturn is the simple gain over invested, in percent. It returns 0
// when invested <= 0.
func AbsoluteReturn(invested, current float64) float64 {
	if invested <= 0 {
		return 0
	}
	return (current - invested) / invested * 100
}

// Weight is part's share of total, in percent. It returns 0 when total <= 0.
func Weight(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}
