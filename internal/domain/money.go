package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// amount converts a float price to a decimal. Non-finite values count as
// zero; they cannot come from JSON and are rejected by input validation.
func amount(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func lineTotal(price float64, qty int) decimal.Decimal {
	return amount(price).Mul(decimal.NewFromInt(int64(qty)))
}

// CartTotal is Σ price×quantity. The sum is taken in decimal and converted
// once, so 24.50×2 + 79.99 yields the float closest to 128.99.
func CartTotal(items []CartItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(lineTotal(it.Price, it.Quantity))
	}
	return sum.InexactFloat64()
}

// CartItemCount is the number of units across all cart lines.
func CartItemCount(items []CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// Revenue is Σ sold×price over the inventory.
func Revenue(items []InventoryItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(lineTotal(it.Price, it.Sold))
	}
	return sum.InexactFloat64()
}
