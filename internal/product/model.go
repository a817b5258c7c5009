package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID                 uuid.UUID
	Title              string
	Description        string
	Price              decimal.Decimal
	DiscountPercentage *decimal.Decimal
	Thumbnail          string
	CategorySlug       string
	Stock              int
	CreatedAt          time.Time
}

// Snapshot is the minimal display shape joined into order line items.
type Snapshot struct {
	Title     string
	Thumbnail string
}

type CreateProductInput struct {
	Title              string
	Description        string
	Price              decimal.Decimal
	DiscountPercentage *decimal.Decimal
	Thumbnail          string
	CategorySlug       string
	Stock              int
}

type UpdateProductInput struct {
	Title              *string
	Description        *string
	Price              *decimal.Decimal
	DiscountPercentage *decimal.Decimal
	Thumbnail          *string
	CategorySlug       *string
	Stock              *int
}

func (in UpdateProductInput) HasAnyField() bool {
	return in.Title != nil ||
		in.Description != nil ||
		in.Price != nil ||
		in.DiscountPercentage != nil ||
		in.Thumbnail != nil ||
		in.CategorySlug != nil ||
		in.Stock != nil
}
