package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"

	"wealthdesk/internal/models"
)

// Totals is an invested/current pair.
type Totals struct {
	Invested float64 `json:"invested"`
	Current  float64 `json:"current"`
}

// ClassTotals is the Totals of one asset class.
type ClassTotals struct {
	AssetClass models.AssetClass
	Totals
}

// Breakdown lists per-asset-class totals in the order each class was first
// seen. It encodes as a JSON object whose keys keep that order.
type Breakdown []ClassTotals

// Class returns the totals for ac.
func (b Breakdown) Class(ac models.AssetClass) (Totals, bool) {
	for _, ct := range b {
		if ct.AssetClass == ac {
			return ct.Totals, true
		}
	}
	return Totals{}, false
}

// MarshalJSON implements json.Marshaler.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ct := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(ct.AssetClass))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(ct.Totals)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. Keys are taken in document
// order.
func (b *Breakdown) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*b = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("breakdown: expected object, got %v", tok)
	}
	out := Breakdown{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("breakdown: expected key, got %v", tok)
		}
		var t Totals
		if err := dec.Decode(&t); err != nil {
			return fmt.Errorf("breakdown: %s: %w", key, err)
		}
		out = append(out, ClassTotals{AssetClass: models.AssetClass(key), Totals: t})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*b = out
	return nil
}

// Summary aggregates a list of holdings. It is derived on demand and never
// stored.
type Summary struct {
	TotalInvested float64   `json:"total_invested"`
	TotalCurrent  float64   `json:"total_current"`
	ByAssetClass  Breakdown `json:"by_asset_class"`
	HoldingsCount int       `json:"holdings_count"`
}

// Summarize totals invested (units x average cost) and current (units x
// current price) overall and per asset class. No rounding is applied.
func Summarize(holdings []models.Holding) Summary {
	s := Summary{ByAssetClass: Breakdown{}, HoldingsCount: len(holdings)}
	index := make(map[models.AssetClass]int)
	for _, h := range holdings {
		invested := h.Invested()
		current := h.CurrentValue()
		s.TotalInvested += invested
		s.TotalCurrent += current

		i, ok := index[h.AssetClass]
		if !ok {
			i = len(s.ByAssetClass)
			index[h.AssetClass] = i
			s.ByAssetClass = append(s.ByAssetClass, ClassTotals{AssetClass: h.AssetClass})
		}
		s.ByAssetClass[i].Invested += invested
		s.ByAssetClass[i].Current += current
	}
	return s
}
