package analytics

import (
	"math"
	"strconv"
)

// Percent is a percentage that encodes NaN and infinities as JSON null.
type Percent float64

// Valid reports whether p is a finite number.
func (p Percent) Valid() bool {
	f := float64(p)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MarshalJSON implements json.Marshaler.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(p), 'f', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler. null decodes as NaN.
func (p *Percent) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = Percent(math.NaN())
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*p = Percent(f)
	return nil
}

// Format renders p with prec decimals and a percent sign, or "n/a".
func (p Percent) Format(prec int) string {
	if !p.Valid() {
		return "n/a"
	}
	return strconv.FormatFloat(float64(p), 'f', prec, 64) + "%"
}

// String renders p with two decimals.
func (p Percent) String() string { return p.Format(2) }
