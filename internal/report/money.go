package report

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a report names an unknown currency.
const DefaultCurrency = money.INR

// Money formats amounts of one currency.
type Money struct {
	cur   *money.Currency
	ascii *money.Formatter
}

// NewMoney returns a formatter for the ISO 4217 code, falling back to
// DefaultCurrency.
func NewMoney(code string) Money {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	return Money{
		cur:   cur,
		ascii: money.NewFormatter(cur.Fraction, cur.Decimal, cur.Thousand, cur.Code+" ", "$1"),
	}
}

// Code is the ISO 4217 code of the currency.
func (m Money) Code() string { return m.cur.Code }

// minor rounds amount half away from zero to the currency's minor unit.
func (m Money) minor(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(int32(m.cur.Fraction)).Round(0).IntPart()
}

// Format renders amount with the currency symbol, e.g. "₹240,000.00".
func (m Money) Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "n/a"
	}
	return m.cur.Formatter().Format(m.minor(amount))
}

// ASCII renders amount with the currency code instead of its symbol, for
// outputs limited to Latin-1 such as the PDF core fonts.
func (m Money) ASCII(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "n/a"
	}
	return m.ascii.Format(m.minor(amount))
}

// Round returns amount rounded to the currency's minor unit.
func (m Money) Round(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return amount
	}
	return decimal.NewFromFloat(amount).Round(int32(m.cur.Fraction)).InexactFloat64()
}
