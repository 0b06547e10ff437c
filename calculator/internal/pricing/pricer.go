package pricing

import "math"

// TargetMarginDefault is the margin a cost edit re-targets the price to.
const TargetMarginDefault = 0.33

// RoundNickel rounds a currency amount to the nearest $0.05,
// half away from zero, then snaps to two decimal places.
func RoundNickel(amount float64) float64 {
	return math.Round(math.Round(amount/0.05)*0.05*100) / 100
}

// Clamp constrains v to [low, high]. Callers guarantee low <= high.
func Clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// Profit is what one sale nets after unit cost and marketplace fees.
// May be negative.
func Profit(price, totalCost, feePct, feeFlat float64) float64 {
	return price - totalCost - (price*feePct/100 + feeFlat)
}

// Margin is profit as a percentage of sale price.
// Defined as 0 when price is zero or negative.
func Margin(price, profit float64) float64 {
	if price <= 0 {
		return 0
	}
	return profit / price * 100
}

// Breakeven is the sale price at which profit is exactly zero.
// When fees consume 100% or more of revenue there is no such price,
// and Breakeven returns +Inf.
func Breakeven(totalCost, feeFlat, feePct float64) float64 {
	denom := 1 - feePct/100
	if denom <= 0 {
		return math.Inf(1)
	}
	return (totalCost + feeFlat) / denom
}

// PriceForMargin inverts Margin: it finds the nickel-rounded price at which
// profit equals targetMargin of the price. When fees plus the target margin
// consume 100% or more of the price no finite price satisfies it, and
// PriceForMargin reports ok=false so callers leave the prior price untouched.
func PriceForMargin(totalCost, feeFlat, feePct, targetMargin float64) (price float64, ok bool) {
	denom := 1 - feePct/100 - targetMargin
	if denom <= 0 {
		return 0, false
	}
	return RoundNickel((totalCost + feeFlat) / denom), true
}

// ApplyEdit sets one numeric field on the snapshot. Cost and fee edits
// re-target the price to the default margin and rederive the slider bounds
// around it; if the target is unreachable the price and bounds keep their
// prior values. Every other field is applied verbatim — in particular a
// direct price write here does NOT clamp, that is ApplyPriceEdit's job.
func ApplyEdit(p Product, field Field, value float64) Product {
	switch field {
	case FieldLanded:
		p.Landed = value
	case FieldShip:
		p.Ship = value
	case FieldPack:
		p.Pack = value
	case FieldFeePct:
		p.FeePct = value
	case FieldFeeFlat:
		p.FeeFlat = value
	case FieldPrice:
		p.Price = value
		return p
	case FieldMinPrice:
		p.MinPrice = value
		return p
	case FieldMaxPrice:
		p.MaxPrice = value
		return p
	case FieldCompetitorPrice:
		p.CompetitorPrice = value
		return p
	default:
		return p
	}

	// A cost input changed, so the old price no longer hits the margin.
	if suggested, ok := PriceForMargin(p.TotalCost(), p.FeeFlat, p.FeePct, TargetMarginDefault); ok {
		p.Price = suggested
		p.MinPrice = math.Round(suggested * 0.5)
		p.MaxPrice = math.Round(suggested * 2)
	}
	return p
}

// ApplyPriceEdit is the single gate every price mutation passes through:
// manual entry, slider, stepper, quick targets and competitor strategies.
// The result is always inside [MinPrice, MaxPrice] and nickel-aligned.
func ApplyPriceEdit(p Product, requested float64) Product {
	p.Price = RoundNickel(Clamp(requested, p.MinPrice, p.MaxPrice))
	return p
}
