package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"profit_engine/calculator/internal/pricing"
)

// QuoteHandler serves the anonymous calculator: no account, no persistence,
// one transient snapshot in, derived figures out.
type QuoteHandler struct{}

func NewQuoteHandler() *QuoteHandler {
	return &QuoteHandler{}
}

type quickTarget struct {
	Margin float64 `json:"margin"`
	Price  float64 `json:"price"`
}

// Quote derives the full calculator view for a submitted snapshot.
// URL: POST /api/quote
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	p := pricing.NewProduct()
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := p.Validate(); err != nil {
		if errors.Is(err, pricing.ErrPriceRange) || errors.Is(err, pricing.ErrNotFinite) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Invalid product", http.StatusUnprocessableEntity)
		return
	}

	// Quick targets: one reachable suggested price per fixed margin.
	var targets []quickTarget
	for _, margin := range pricing.QuickTargetMargins() {
		if price, ok := pricing.PriceForMargin(p.TotalCost(), p.FeeFlat, p.FeePct, margin); ok {
			targets = append(targets, quickTarget{Margin: margin, Price: price})
		}
	}

	resp := map[string]interface{}{
		"product":       p,
		"summary":       pricing.Summarize(p),
		"quick_targets": targets,
	}
	if strategies := pricing.Strategies(p); strategies != nil {
		resp["strategies"] = strategies
	}
	json.NewEncoder(w).Encode(resp)
}
