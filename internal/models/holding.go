package models

// PricePoint is one sample of a holding's per-unit price.
type PricePoint struct {
	Date  Date    `json:"date" yaml:"date" swaggertype:"string" format:"date"`
	Price float64 `json:"price" yaml:"price"`
}

// Holding is one purchased position in an asset.
type Holding struct {
	ID           string       `json:"id" yaml:"id"`
	ClientID     string       `json:"client_id" yaml:"client_id"`
	AssetClass   AssetClass   `json:"asset_class" yaml:"asset_class"`
	Name         string       `json:"name" yaml:"name"`
	PurchaseDate Date         `json:"purchase_date" yaml:"purchase_date" swaggertype:"string" format:"date"`
	Units        float64      `json:"units" yaml:"units"`
	AverageCost  float64      `json:"average_cost" yaml:"average_cost"`
	CurrentPrice float64      `json:"current_price" yaml:"current_price"`
	Notes        string       `json:"notes" yaml:"notes"`
	PriceHistory []PricePoint `json:"price_history" yaml:"-"`
}

// Invested is the cost basis of the position.
func (h Holding) Invested() float64 { return h.Units * h.AverageCost }

// CurrentValue is the market value of the position.
func (h Holding) CurrentValue() float64 { return h.Units * h.CurrentPrice }

// HoldingPatch lists the holding fields an update may change. Price history
// is append-only and cannot be patched.
type HoldingPatch struct {
	AssetClass   *AssetClass `json:"asset_class,omitempty"`
	Name         *string     `json:"name,omitempty"`
	PurchaseDate *Date       `json:"purchase_date,omitempty"`
	Units        *float64    `json:"units,omitempty"`
	AverageCost  *float64    `json:"average_cost,omitempty"`
	CurrentPrice *float64    `json:"current_price,omitempty"`
	Notes        *string     `json:"notes,omitempty"`
}

// PriceChanged reports whether applying p to h would change its current price.
func (p HoldingPatch) PriceChanged(h Holding) bool {
	return p.CurrentPrice != nil && *p.CurrentPrice != h.CurrentPrice
}

// Apply merges the set fields of p over h.
func (p HoldingPatch) Apply(h *Holding) {
	if p.AssetClass != nil {
		h.AssetClass = *p.AssetClass
	}
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.PurchaseDate != nil {
		h.PurchaseDate = *p.PurchaseDate
	}
	if p.Units != nil {
		h.Units = *p.Units
	}
	if p.AverageCost != nil {
		h.AverageCost = *p.AverageCost
	}
	if p.CurrentPrice != nil {
		h.CurrentPrice = *p.CurrentPrice
	}
	if p.Notes != nil {
		h.Notes = *p.Notes
	}
}
