package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice   = errors.New("list price must not be negative")
	ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")
)

var hundred = decimal.NewFromInt(100)

// EffectiveUnitPrice applies an optional discount percentage to a list
// price. A nil discount means the list price is returned unchanged.
func EffectiveUnitPrice(listPrice decimal.Decimal, discountPct *decimal.Decimal) (decimal.Decimal, error) {
	if listPrice.IsNegative() {
		return decimal.Zero, ErrNegativePrice
	}

	if discountPct == nil {
		return listPrice, nil
	}

	if discountPct.IsNegative() || discountPct.GreaterThan(hundred) {
		return decimal.Zero, ErrInvalidDiscount
	}

	// listPrice * (1 - discount/100)
	factor := decimal.NewFromInt(1).Sub(discountPct.Div(hundred))
	return listPrice.Mul(factor), nil
}

// LineTotal is the effective unit price multiplied by the quantity.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
