package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestEffectiveUnitPrice(t *testing.T) {
	tests := []struct {
		name     string
		list     string
		discount *decimal.Decimal
		want     string
	}{
		{"NoDiscount", "50000", nil, "50000"},
		{"TwentyPercent", "100000", pct("20"), "80000"},
		{"ZeroPercent", "100000", pct("0"), "100000"},
		{"FullDiscount", "100000", pct("100"), "0"},
		{"FractionalPrice", "19.99", pct("10"), "17.991"},
		{"ZeroPrice", "0", pct("50"), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EffectiveUnitPrice(decimal.RequireFromString(tt.list), tt.discount)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestEffectiveUnitPrice_Invalid(t *testing.T) {
	_, err := EffectiveUnitPrice(decimal.NewFromInt(-1), nil)
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = EffectiveUnitPrice(decimal.NewFromInt(10), pct("-5"))
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = EffectiveUnitPrice(decimal.NewFromInt(10), pct("100.01"))
	assert.ErrorIs(t, err, ErrInvalidDiscount)
}

func TestLineTotal(t *testing.T) {
	unit := decimal.RequireFromString("80000")
	assert.True(t, LineTotal(unit, 2).Equal(decimal.RequireFromString("160000")))
	assert.True(t, LineTotal(decimal.Zero, 5).Equal(decimal.Zero))
}
