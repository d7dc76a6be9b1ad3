package calc

import "github.com/shopspring/decimal"

// DiscountPercent computes the whole-percent discount implied by an original
// price, for display only. Returns 0 when there is no original price or it
// does not exceed the current price; originalPrice/price ordering is never
// validated or persisted.
func DiscountPercent(price, originalPrice float64) int {
	if price <= 0 || originalPrice <= price {
		return 0
	}
	p := decimal.NewFromFloat(price)
	op := decimal.NewFromFloat(originalPrice)
	pct := op.Sub(p).Div(op).Mul(decimal.NewFromInt(100)).Round(0)
	return int(pct.IntPart())
}
