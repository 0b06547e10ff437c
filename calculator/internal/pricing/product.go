package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// 1. THE DATA STRUCTURE
// A Product is one cost/price profile. The engine treats it as an
// immutable snapshot per call and hands back an updated copy.
type Product struct {
	ID              string    `json:"id,omitempty"`
	Name            string    `json:"name"`
	Landed          float64   `json:"landed"`
	Ship            float64   `json:"ship"`
	Pack            float64   `json:"pack"`
	FeePct          float64   `json:"fee_pct"`
	FeeFlat         float64   `json:"fee_flat"`
	Price           float64   `json:"price"`
	MinPrice        float64   `json:"min_price"`
	MaxPrice        float64   `json:"max_price"`
	CompetitorPrice float64   `json:"competitor_price"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
}

// NewProduct returns the blank profile a fresh calculator session starts with.
func NewProduct() Product {
	return Product{
		Name:     "Untitled Product",
		Landed:   5.00,
		Ship:     3.50,
		Pack:     0.50,
		FeePct:   15,
		FeeFlat:  0.00,
		Price:    19.99,
		MinPrice: 10,
		MaxPrice: 50,
	}
}

// TotalCost is the per-unit cost before marketplace fees.
func (p Product) TotalCost() float64 {
	return p.Landed + p.Ship + p.Pack
}

// Field names an editable numeric field of a Product.
type Field string

const (
	FieldLanded          Field = "landed"
	FieldShip            Field = "ship"
	FieldPack            Field = "pack"
	FieldFeePct          Field = "fee_pct"
	FieldFeeFlat         Field = "fee_flat"
	FieldPrice           Field = "price"
	FieldMinPrice        Field = "min_price"
	FieldMaxPrice        Field = "max_price"
	FieldCompetitorPrice Field = "competitor_price"
)

// IsCostField reports whether editing the field changes what a sale costs,
// which is what triggers the margin retarget in ApplyEdit.
func (f Field) IsCostField() bool {
	switch f {
	case FieldLanded, FieldShip, FieldPack, FieldFeePct, FieldFeeFlat:
		return true
	}
	return false
}

var (
	// ErrPriceRange reports a min bound above the max bound.
	ErrPriceRange = errors.New("min price exceeds max price")
	// ErrNotFinite reports a NaN or infinite amount in a field.
	ErrNotFinite = errors.New("amount is not a finite number")
)

// Validate checks the preconditions the engine itself does not guard:
// every numeric field must be finite and the clamp bounds must be ordered.
// Callers must not persist a snapshot that fails validation.
func (p Product) Validate() error {
	checks := []struct {
		field Field
		value float64
	}{
		{FieldLanded, p.Landed},
		{FieldShip, p.Ship},
		{FieldPack, p.Pack},
		{FieldFeePct, p.FeePct},
		{FieldFeeFlat, p.FeeFlat},
		{FieldPrice, p.Price},
		{FieldMinPrice, p.MinPrice},
		{FieldMaxPrice, p.MaxPrice},
		{FieldCompetitorPrice, p.CompetitorPrice},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%s: %w", c.field, ErrNotFinite)
		}
	}
	if p.MinPrice > p.MaxPrice {
		return ErrPriceRange
	}
	return nil
}
