// Package pricing derives recommended retail prices for catalog products.
package pricing

import (
	"github.com/shopspring/decimal"
)

// MinRrcRatio is the lowest acceptable rrc-to-price ratio. A stored rrc
// below it is considered broken source data and gets recomputed.
const MinRrcRatio = 1.3

// DeriveRrc returns the recommended retail price for a product. An existing
// rrc of at least price × MinRrcRatio is kept as-is; otherwise a replacement
// is computed from the price tier and rounded to 2 decimal places. The rule
// is pure and idempotent: a derived value always satisfies the ratio check.
func DeriveRrc(price float64, rrc *float64) float64 {
	if rrc != nil && *rrc >= price*MinRrcRatio {
		return *rrc
	}

	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromFloat(multiplier(price))).
		Round(2).
		InexactFloat64()
}

// multiplier picks the markup tier, thresholds are exclusive upper bounds.
func multiplier(price float64) float64 {
	switch {
	case price < 100:
		return 1.8
	case price < 1000:
		return 1.6
	case price < 2000:
		return 1.4
	default:
		return MinRrcRatio
	}
}
