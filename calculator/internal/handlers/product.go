package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"profit_engine/calculator/internal/auth"
	"profit_engine/calculator/internal/pricing"

	"github.com/google/uuid"
)

type ProductHandler struct {
	products ProductRepository
}

func NewProductHandler(p ProductRepository) *ProductHandler {
	return &ProductHandler{products: p}
}

// ---------------------------------------------------------------------
// 1. LIST (My Products, newest first)
// ---------------------------------------------------------------------
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	products, err := h.products.ListProducts(r.Context(), accountID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	// An active session always has at least one product to edit.
	if len(products) == 0 {
		starter := pricing.NewProduct()
		starter.ID = uuid.New().String()
		created, err := h.products.CreateProduct(r.Context(), accountID, starter)
		if err != nil {
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}
		products = []pricing.Product{created}
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"products": products,
	})
}

// ---------------------------------------------------------------------
// 2. CREATE (Add New Product)
// ---------------------------------------------------------------------
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	p := pricing.NewProduct()
	p.ID = uuid.New().String()

	created, err := h.products.CreateProduct(r.Context(), accountID, p)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeProduct(w, created)
}

// ---------------------------------------------------------------------
// 3. GET (Product + Derived Figures)
// ---------------------------------------------------------------------
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := h.ownedProduct(w, r)
	if !ok {
		return
	}
	writeProduct(w, *p)
}

// ---------------------------------------------------------------------
// 4. EDIT FIELD (The calculator inputs)
// ---------------------------------------------------------------------
// Cost and fee edits re-target the price through the engine; a price edit is
// clamped and nickel-aligned; bounds and competitor price apply verbatim.
func (h *ProductHandler) EditField(w http.ResponseWriter, r *http.Request) {
	accountID, _ := auth.AccountID(r.Context())
	p, ok := h.ownedProduct(w, r)
	if !ok {
		return
	}

	var req struct {
		Field string  `json:"field"`
		Value float64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	var updated pricing.Product
	switch field := pricing.Field(req.Field); field {
	case pricing.FieldPrice:
		updated = pricing.ApplyPriceEdit(*p, req.Value)
	case pricing.FieldLanded, pricing.FieldShip, pricing.FieldPack,
		pricing.FieldFeePct, pricing.FieldFeeFlat,
		pricing.FieldMinPrice, pricing.FieldMaxPrice,
		pricing.FieldCompetitorPrice:
		updated = pricing.ApplyEdit(*p, field, req.Value)
	default:
		http.Error(w, "Unknown field", http.StatusBadRequest)
		return
	}

	if !h.persist(w, r, accountID, updated) {
		return
	}
	writeProduct(w, updated)
}

// ---------------------------------------------------------------------
// 5. RENAME
// ---------------------------------------------------------------------
func (h *ProductHandler) Rename(w http.ResponseWriter, r *http.Request) {
	accountID, _ := auth.AccountID(r.Context())
	p, ok := h.ownedProduct(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	updated := *p
	updated.Name = strings.TrimSpace(req.Name)
	if updated.Name == "" {
		updated.Name = "Untitled Product"
	}

	if !h.persist(w, r, accountID, updated) {
		return
	}
	writeProduct(w, updated)
}

// ---------------------------------------------------------------------
// 6. TARGET MARGIN (Quick Targets)
// ---------------------------------------------------------------------
func (h *ProductHandler) Target(w http.ResponseWriter, r *http.Request) {
	accountID, _ := auth.AccountID(r.Context())
	p, ok := h.ownedProduct(w, r)
	if !ok {
		return
	}

	var req struct {
		Margin float64 `json:"margin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Margin <= 0 || req.Margin >= 1 {
		http.Error(w, "Margin must be a fraction between 0 and 1", http.StatusBadRequest)
		return
	}

	suggested, reachable := pricing.PriceForMargin(p.TotalCost(), p.FeeFlat, p.FeePct, req.Margin)
	if !reachable {
		http.Error(w, "Target margin unreachable at current fees", http.StatusUnprocessableEntity)
		return
	}

	updated := pricing.ApplyPriceEdit(*p, suggested)
	if !h.persist(w, r, accountID, updated) {
		return
	}
	writeProduct(w, updated)
}

// ---------------------------------------------------------------------
// 7. STRATEGIES (Competitor Analysis)
// ---------------------------------------------------------------------
func (h *ProductHandler) Strategies(w http.ResponseWriter, r *http.Request) {
	p, ok := h.ownedProduct(w, r)
	if !ok {
		return
	}

	strategies := pricing.Strategies(*p)
	if strategies == nil {
		http.Error(w, "No competitor price set", http.StatusConflict)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"strategies": strategies,
	})
}

// ---------------------------------------------------------------------
// 8. DELETE (Never the last one)
// ---------------------------------------------------------------------
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	productID := r.PathValue("id")

	count, err := h.products.CountProducts(r.Context(), accountID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if count <= 1 {
		http.Error(w, "Cannot delete your last product", http.StatusConflict)
		return
	}

	if err := h.products.DeleteProduct(r.Context(), accountID, productID); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
}

// ---------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------

// ownedProduct loads the product in the path for the authenticated account.
// A foreign product answers 404 so existence never leaks.
func (h *ProductHandler) ownedProduct(w http.ResponseWriter, r *http.Request) (*pricing.Product, bool) {
	accountID, ok := auth.AccountID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	p, err := h.products.GetProduct(r.Context(), accountID, r.PathValue("id"))
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return nil, false
	}
	if p == nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return nil, false
	}
	return p, true
}

// persist validates and saves an updated snapshot. Validation failures are
// the caller's bad input, never a persisted NaN.
func (h *ProductHandler) persist(w http.ResponseWriter, r *http.Request, accountID int, p pricing.Product) bool {
	if err := p.Validate(); err != nil {
		if errors.Is(err, pricing.ErrPriceRange) || errors.Is(err, pricing.ErrNotFinite) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		} else {
			http.Error(w, "Invalid product", http.StatusUnprocessableEntity)
		}
		return false
	}
	if err := h.products.UpdateProduct(r.Context(), accountID, p); err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return false
	}
	return true
}

func writeProduct(w http.ResponseWriter, p pricing.Product) {
	json.NewEncoder(w).Encode(map[string]interface{}{
		"product": p,
		"summary": pricing.Summarize(p),
	})
}
