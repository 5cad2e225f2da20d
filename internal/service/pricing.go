package service

import "github.com/shopspring/decimal"

// TotalPrice is quantity × unit price in exact decimal arithmetic; the scale
// of the unit price is kept, so 3 × 10.00 is 30.00.
func TotalPrice(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(quantity).Mul(unitPrice)
}
