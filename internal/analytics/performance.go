package analytics

import "wealthdesk/internal/models"

// HoldingPerformance is one holding valued as of a date.
type HoldingPerformance struct {
	Holding        models.Holding `json:"holding"`
	Invested       float64        `json:"invested"`
	Current        float64        `json:"current"`
	Gain           float64        `json:"gain"`
	AbsoluteReturn Percent        `json:"absolute_return" swaggertype:"number"`
	Years          float64        `json:"years"`
	CAGR           Percent        `json:"cagr" swaggertype:"number"`
}

// EvaluateHolding values h as of asOf, annualizing from its purchase date.
func EvaluateHolding(h models.Holding, asOf models.Date) HoldingPerformance {
	invested := h.Invested()
	current := h.CurrentValue()
	years := Years(h.PurchaseDate, asOf)
	return HoldingPerformance{
		Holding:        h,
		Invested:       invested,
		Current:        current,
		Gain:           current - invested,
		AbsoluteReturn: Percent(AbsoluteReturn(invested, current)),
		Years:          years,
		CAGR:           Percent(CAGR(invested, current, years)),
	}
}

// AllocationRow is an asset class with its share of the current value.
type AllocationRow struct {
	AssetClass models.AssetClass `json:"asset_class"`
	Invested   float64           `json:"invested"`
	Current    float64           `json:"current"`
	Weight     Percent           `json:"weight" swaggertype:"number"`
}

// PortfolioPerformance is a whole portfolio valued as of a date. The
// annualized figures run from the earliest purchase date.
type PortfolioPerformance struct {
	Summary
	AsOf           models.Date          `json:"as_of" swaggertype:"string" format:"date"`
	Since          models.Date          `json:"since" swaggertype:"string" format:"date"`
	Days           int                  `json:"days"`
	Gain           float64              `json:"gain"`
	AbsoluteReturn Percent              `json:"absolute_return" swaggertype:"number"`
	CAGR           Percent              `json:"cagr" swaggertype:"number"`
	XIRR           Percent              `json:"xirr" swaggertype:"number"`
	Allocation     []AllocationRow      `json:"allocation"`
	Holdings       []HoldingPerformance `json:"holdings"`
}

// EarliestPurchase returns the oldest purchase date among holdings, or
// fallback when there are none.
func EarliestPurchase(holdings []models.Holding, fallback models.Date) models.Date {
	if len(holdings) == 0 {
		return fallback
	}
	earliest := holdings[0].PurchaseDate
	for _, h := range holdings[1:] {
		if h.PurchaseDate.Before(earliest) {
			earliest = h.PurchaseDate
		}
	}
	return earliest
}

// EvaluatePortfolio summarizes holdings and values them as of asOf. An empty
// portfolio has zero totals and zero rates.
func EvaluatePortfolio(holdings []models.Holding, asOf models.Date) PortfolioPerformance {
	s := Summarize(holdings)
	since := EarliestPurchase(holdings, asOf)
	days := Days(since, asOf)

	p := PortfolioPerformance{
		Summary:        s,
		AsOf:           asOf,
		Since:          since,
		Days:           days,
		Gain:           s.TotalCurrent - s.TotalInvested,
		AbsoluteReturn: Percent(AbsoluteReturn(s.TotalInvested, s.TotalCurrent)),
		CAGR:           Percent(CAGR(s.TotalInvested, s.TotalCurrent, float64(days)/DaysPerYear)),
		XIRR:           Percent(XIRRApprox(s.TotalInvested, s.TotalCurrent, days)),
		Allocation:     make([]AllocationRow, 0, len(s.ByAssetClass)),
		Holdings:       make([]HoldingPerformance, 0, len(holdings)),
	}
	for _, ct := range s.ByAssetClass {
		p.Allocation = append(p.Allocation, AllocationRow{
			AssetClass: ct.AssetClass,
			Invested:   ct.Invested,
			Current:    ct.Current,
			Weight:     Percent(Weight(ct.Current, s.TotalCurrent)),
		})
	}
	for _, h := range holdings {
		p.Holdings = append(p.Holdings, EvaluateHolding(h, asOf))
	}
	return p
}
