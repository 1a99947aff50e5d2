package model

import "time"

// DefaultUnitType is used when a product is created without a unit type
const DefaultUnitType = "kg"

// Product is a catalog entry. Only available products are listed publicly.
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	UnitType     string    `json:"unit_type"`
	Availability bool      `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateProductRequest is the body of POST /products.
// Pointers distinguish "absent" from zero values.
type CreateProductRequest struct {
	Name         string   `json:"name" validate:"required"`
	Price        *float64 `json:"price" validate:"required"`
	UnitType     string   `json:"unit_type"`
	Availability *bool    `json:"availability"`
}
