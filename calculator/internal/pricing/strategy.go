package pricing

import "math"

// QuickTargetMargins are the fixed margin shortcuts offered to the user.
func QuickTargetMargins() []float64 {
	return []float64{0.10, 0.15, 0.20, 0.25, 0.33, 0.40, 0.50, 0.75}
}

// Strategy is one competitor-relative pricing candidate.
type Strategy struct {
	Label  string  `json:"label"`
	Price  float64 `json:"price"`
	Profit float64 `json:"profit"`
}

// Strategies produces the competitor-relative candidates for a product.
// Each candidate is nickel-rounded first and its profit projected against the
// rounded price, so the profit shown is the profit the user actually gets if
// they accept it. Returns nil when no competitor price is set.
func Strategies(p Product) []Strategy {
	if p.CompetitorPrice <= 0 {
		return nil
	}

	cost := p.TotalCost()
	candidates := []struct {
		label string
		raw   float64
	}{
		{"Price to Beat", p.CompetitorPrice - 0.50},
		{"Price to Match", p.CompetitorPrice},
		{"Price for Premium", p.CompetitorPrice * 1.05},
	}

	out := make([]Strategy, 0, len(candidates))
	for _, c := range candidates {
		rounded := RoundNickel(c.raw)
		out = append(out, Strategy{
			Label:  c.label,
			Price:  rounded,
			Profit: Profit(rounded, cost, p.FeePct, p.FeeFlat),
		})
	}
	return out
}

// Summary bundles the derived figures the calculator displays for a snapshot.
type Summary struct {
	TotalCost          float64 `json:"total_cost"`
	Profit             float64 `json:"profit"`
	Margin             float64 `json:"margin"`
	Breakeven          float64 `json:"breakeven"`
	BreakevenReachable bool    `json:"breakeven_reachable"`
	CompetitorDelta    float64 `json:"competitor_delta,omitempty"`
}

// Summarize derives the display figures for a snapshot. An unreachable
// breakeven (fees at or above 100%) is reported via BreakevenReachable
// rather than an infinity, which would not survive JSON encoding.
func Summarize(p Product) Summary {
	cost := p.TotalCost()
	profit := Profit(p.Price, cost, p.FeePct, p.FeeFlat)

	s := Summary{
		TotalCost: cost,
		Profit:    profit,
		Margin:    Margin(p.Price, profit),
	}
	if be := Breakeven(cost, p.FeeFlat, p.FeePct); !math.IsInf(be, 1) {
		s.Breakeven = be
		s.BreakevenReachable = true
	}
	if p.CompetitorPrice > 0 {
		s.CompetitorDelta = p.Price - p.CompetitorPrice
	}
	return s
}
