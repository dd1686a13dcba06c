package analytics

import (
	"encoding/json"
	"math"
	"testing"

	"wealthdesk/internal/models"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestCAGR(t *testing.T) {
	tests := []struct {
		name                    string
		initial, current, years float64
		want                    float64
	}{
		{"doubling in one year", 100, 200, 1, 100},
		{"flat over five years", 100, 100, 5, 0},
		{"quadrupling in two years", 100, 400, 2, 100},
		{"halving in one year", 100, 50, 1, -50},
		{"zero initial", 0, 200, 1, 0},
		{"negative initial", -100, 200, 1, 0},
		{"zero years", 100, 200, 0, 0},
		{"negative years", 100, 200, -2, 0},
		{"two years", 100, 121, 2, 10},
		{"fractional years", 100, 110.25, 1.5, (math.Pow(1.1025, 1/1.5) - 1) * 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CAGR(tt.initial, tt.current, tt.years)
			if !approx(got, tt.want) {
				t.Errorf("CAGR(%v, %v, %v) = %v, want %v", tt.initial, tt.current, tt.years, got, tt.want)
			}
		})
	}

	t.Run("guard holds for any current and years", func(t *testing.T) {
		for _, current := range []float64{-1e6, -1, 0, 1, 1e9} {
			for _, years := range []float64{-3, 0, 0.5, 1, 40} {
				if got := CAGR(0, current, years); got != 0 {
					t.Errorf("CAGR(0, %v, %v) = %v, want 0", current, years, got)
				}
				if got := CAGR(100, current, 0); got != 0 {
					t.Errorf("CAGR(100, %v, 0) = %v, want 0", current, got)
				}
			}
		}
	})

	t.Run("negative current over fractional years is NaN", func(t *testing.T) {
		if got := CAGR(100, -50, 1.5); !math.IsNaN(got) {
			t.Errorf("expected NaN, got %v", got)
		}
	})

	t.Run("negative current over whole years is defined", func(t *testing.T) {
		if got := CAGR(100, -50, 1); !approx(got, -150) {
			t.Errorf("expected -150, got %v", got)
		}
	})
}

func TestXIRRApprox(t *testing.T) {
	if got := XIRRApprox(0, 200, 365); got != 0 {
		t.Errorf("expected 0 for zero initial, got %v", got)
	}
	if got := XIRRApprox(100, 200, 0); got != 0 {
		t.Errorf("expected 0 for zero days, got %v", got)
	}
	if got := XIRRApprox(100, 200, -10); got != 0 {
		t.Errorf("expected 0 for negative days, got %v", got)
	}

	for _, days := range []int{1, 30, 365, 1000} {
		want := CAGR(240000, 290000, float64(days)/DaysPerYear)
		if got := XIRRApprox(240000, 290000, days); !approx(got, want) {
			t.Errorf("days=%d: expected XIRRApprox to equal CAGR %v, got %v", days, want, got)
		}
	}

	if got := XIRRApprox(100, 200, 1461); !approx(got, CAGR(100, 200, 4)) {
		t.Errorf("1461 days is four years, got %v", got)
	}
}

func TestDaysAndYears(t *testing.T) {
	from := models.MustParseDate("2023-01-15")
	to := models.MustParseDate("2024-01-15")
	if d := Days(from, to); d != 365 {
		t.Errorf("expected 365 days, got %d", d)
	}
	if d := Days(to, from); d != -365 {
		t.Errorf("expected -365 days, got %d", d)
	}
	if y := Years(from, to); !approx(y, 365/DaysPerYear) {
		t.Errorf("unexpected years %v", y)
	}
	leap := Days(models.MustParseDate("2024-02-28"), models.MustParseDate("2024-03-01"))
	if leap != 2 {
		t.Errorf("expected 2 days across leap day, got %d", leap)
	}
}

func TestAbsoluteReturnAndWeight(t *testing.T) {
	if got := AbsoluteReturn(240000, 280000); !approx(got, 40000.0/240000*100) {
		t.Errorf("unexpected absolute return %v", got)
	}
	if got := AbsoluteReturn(0, 10); got != 0 {
		t.Errorf("expected 0 for zero invested, got %v", got)
	}
	if got := Weight(25, 100); !approx(got, 25) {
		t.Errorf("expected 25, got %v", got)
	}
	if got := Weight(25, 0); got != 0 {
		t.Errorf("expected 0 for zero total, got %v", got)
	}
}

func holding(ac models.AssetClass, units, cost, price float64, purchased string) models.Holding {
	return models.Holding{
		AssetClass:   ac,
		Units:        units,
		AverageCost:  cost,
		CurrentPrice: price,
		PurchaseDate: models.MustParseDate(purchased),
	}
}

func TestSummarize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := Summarize(nil)
		if s.TotalInvested != 0 || s.TotalCurrent != 0 || s.HoldingsCount != 0 || len(s.ByAssetClass) != 0 {
			t.Errorf("expected zero summary, got %+v", s)
		}
		raw, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		want := `{"total_invested":0,"total_current":0,"by_asset_class":{},"holdings_count":0}`
		if string(raw) != want {
			t.Errorf("expected %s, got %s", want, raw)
		}
	})

	t.Run("single stock holding", func(t *testing.T) {
		s := Summarize([]models.Holding{holding(models.AssetClassStocks, 100, 2400, 2800, "2023-01-15")})
		if s.TotalInvested != 240000 || s.TotalCurrent != 280000 || s.HoldingsCount != 1 {
			t.Errorf("unexpected totals %+v", s)
		}
		stocks, ok := s.ByAssetClass.Class(models.AssetClassStocks)
		if !ok || stocks.Invested != 240000 || stocks.Current != 280000 {
			t.Errorf("unexpected stocks breakdown %+v", stocks)
		}
	})

	t.Run("breakdown keeps first-seen order", func(t *testing.T) {
		s := Summarize([]models.Holding{
			holding(models.AssetClassMutualFunds, 500, 450, 580, "2022-06-10"),
			holding(models.AssetClassStocks, 100, 2400, 2800, "2023-01-15"),
			holding(models.AssetClassMutualFunds, 10, 100, 110, "2023-02-01"),
		})
		if len(s.ByAssetClass) != 2 {
			t.Fatalf("expected 2 classes, got %d", len(s.ByAssetClass))
		}
		if s.ByAssetClass[0].AssetClass != models.AssetClassMutualFunds || s.ByAssetClass[1].AssetClass != models.AssetClassStocks {
			t.Errorf("unexpected order %+v", s.ByAssetClass)
		}
		mf, _ := s.ByAssetClass.Class(models.AssetClassMutualFunds)
		if mf.Invested != 225000+1000 || mf.Current != 290000+1100 {
			t.Errorf("unexpected mutual fund totals %+v", mf)
		}
		raw, _ := json.Marshal(s.ByAssetClass)
		want := `{"Mutual Funds":{"invested":226000,"current":291100},"Stocks":{"invested":240000,"current":280000}}`
		if string(raw) != want {
			t.Errorf("expected %s, got %s", want, raw)
		}
		if _, ok := s.ByAssetClass.Class(models.AssetClassBonds); ok {
			t.Error("absent class should not be found")
		}
	})

	t.Run("decodes what it encodes", func(t *testing.T) {
		s := Summarize([]models.Holding{
			holding(models.AssetClassStocks, 100, 2400, 2800, "2023-01-15"),
			holding(models.AssetClassMutualFunds, 500, 450, 580, "2022-06-10"),
			holding(models.AssetClassBonds, 3, 1000, 990, "2021-01-01"),
		})
		raw, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var got Summary
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.TotalInvested != s.TotalInvested || got.TotalCurrent != s.TotalCurrent || got.HoldingsCount != 3 {
			t.Errorf("unexpected totals %+v", got)
		}
		if len(got.ByAssetClass) != 3 {
			t.Fatalf("expected 3 classes, got %+v", got.ByAssetClass)
		}
		for i, ct := range s.ByAssetClass {
			if got.ByAssetClass[i] != ct {
				t.Errorf("class %d: expected %+v, got %+v", i, ct, got.ByAssetClass[i])
			}
		}
	})

	t.Run("rejects non-object breakdown", func(t *testing.T) {
		var b Breakdown
		if err := json.Unmarshal([]byte(`[1,2]`), &b); err == nil {
			t.Error("expected error")
		}
		if err := json.Unmarshal([]byte(`null`), &b); err != nil || b != nil {
			t.Errorf("expected nil breakdown from null, got %v %v", b, err)
		}
	})

	t.Run("additive over concatenation", func(t *testing.T) {
		a := []models.Holding{
			holding(models.AssetClassStocks, 100, 2400, 2800, "2023-01-15"),
			holding(models.AssetClassBonds, 3, 1000, 990, "2021-01-01"),
		}
		b := []models.Holding{
			holding(models.AssetClassStocks, 7.5, 120, 130, "2023-03-01"),
			holding(models.AssetClassAIF, 1, 1e6, 1.2e6, "2020-05-05"),
		}
		sa, sb := Summarize(a), Summarize(b)
		sab := Summarize(append(append([]models.Holding{}, a...), b...))
		if !approx(sab.TotalInvested, sa.TotalInvested+sb.TotalInvested) {
			t.Errorf("invested not additive: %v vs %v", sab.TotalInvested, sa.TotalInvested+sb.TotalInvested)
		}
		if !approx(sab.TotalCurrent, sa.TotalCurrent+sb.TotalCurrent) {
			t.Errorf("current not additive: %v vs %v", sab.TotalCurrent, sa.TotalCurrent+sb.TotalCurrent)
		}
		if sab.HoldingsCount != 4 {
			t.Errorf("expected 4 holdings, got %d", sab.HoldingsCount)
		}
	})
}

func TestPercent(t *testing.T) {
	raw, err := json.Marshal(struct {
		A Percent `json:"a"`
		B Percent `json:"b"`
		C Percent `json:"c"`
	}{Percent(12.5), Percent(math.NaN()), Percent(math.Inf(1))})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"a":12.5,"b":null,"c":null}` {
		t.Errorf("unexpected json %s", raw)
	}

	var p Percent
	if err := json.Unmarshal([]byte("null"), &p); err != nil || p.Valid() {
		t.Errorf("expected null to decode as NaN, got %v %v", p, err)
	}
	if err := json.Unmarshal([]byte("3.25"), &p); err != nil || p != 3.25 {
		t.Errorf("expected 3.25, got %v %v", p, err)
	}

	if s := Percent(16.666).String(); s != "16.67%" {
		t.Errorf("expected 16.67%%, got %s", s)
	}
	if s := Percent(math.NaN()).Format(1); s != "n/a" {
		t.Errorf("expected n/a, got %s", s)
	}
}

func TestEvaluatePortfolio(t *testing.T) {
	asOf := models.MustParseDate("2024-06-10")
	holdings := []models.Holding{
		holding(models.AssetClassStocks, 100, 2400, 2800, "2023-01-15"),
		holding(models.AssetClassMutualFunds, 500, 450, 580, "2022-06-10"),
	}

	p := EvaluatePortfolio(holdings, asOf)

	if p.Since.String() != "2022-06-10" {
		t.Errorf("expected earliest purchase 2022-06-10, got %s", p.Since)
	}
	if p.Days != 731 {
		t.Errorf("expected 731 days, got %d", p.Days)
	}
	if p.TotalInvested != 465000 || p.TotalCurrent != 570000 || p.Gain != 105000 {
		t.Errorf("unexpected totals %+v", p.Summary)
	}
	wantCAGR := CAGR(465000, 570000, 731/DaysPerYear)
	if !approx(float64(p.CAGR), wantCAGR) || !approx(float64(p.XIRR), wantCAGR) {
		t.Errorf("expected CAGR and XIRR %v, got %v / %v", wantCAGR, p.CAGR, p.XIRR)
	}
	if !approx(float64(p.AbsoluteReturn), 105000.0/465000*100) {
		t.Errorf("unexpected absolute return %v", p.AbsoluteReturn)
	}

	if len(p.Allocation) != 2 || p.Allocation[0].AssetClass != models.AssetClassStocks {
		t.Fatalf("unexpected allocation %+v", p.Allocation)
	}
	var weights float64
	for _, row := range p.Allocation {
		weights += float64(row.Weight)
	}
	if !approx(weights, 100) {
		t.Errorf("weights should sum to 100, got %v", weights)
	}

	if len(p.Holdings) != 2 {
		t.Fatalf("expected 2 holding rows, got %d", len(p.Holdings))
	}
	stock := p.Holdings[0]
	if stock.Invested != 240000 || stock.Current != 280000 || stock.Gain != 40000 {
		t.Errorf("unexpected stock row %+v", stock)
	}
	wantStock := CAGR(240000, 280000, float64(Days(models.MustParseDate("2023-01-15"), asOf))/DaysPerYear)
	if !approx(float64(stock.CAGR), wantStock) {
		t.Errorf("expected stock CAGR %v, got %v", wantStock, stock.CAGR)
	}
}

func TestEvaluatePortfolio_Empty(t *testing.T) {
	asOf := models.MustParseDate("2024-06-10")
	p := EvaluatePortfolio(nil, asOf)
	if p.Since != asOf || p.Days != 0 {
		t.Errorf("expected since=asOf and zero days, got %s %d", p.Since, p.Days)
	}
	if p.CAGR != 0 || p.XIRR != 0 || p.AbsoluteReturn != 0 {
		t.Errorf("expected zero rates, got %+v", p)
	}
	if _, err := json.Marshal(p); err != nil {
		t.Errorf("marshal: %v", err)
	}
}

func TestEvaluateHolding_PurchasedToday(t *testing.T) {
	on := models.MustParseDate("2024-06-10")
	hp := EvaluateHolding(holding(models.AssetClassBonds, 10, 100, 101, "2024-06-10"), on)
	if hp.CAGR != 0 || hp.Years != 0 {
		t.Errorf("same-day holding has no annualized rate, got %+v", hp)
	}
	if !approx(float64(hp.AbsoluteReturn), 1) {
		t.Errorf("expected 1%% absolute return, got %v", hp.AbsoluteReturn)
	}
}
