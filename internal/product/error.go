package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("product price must not be negative")
	ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")
	ErrEmptyTitle      = errors.New("product title is required")
)
