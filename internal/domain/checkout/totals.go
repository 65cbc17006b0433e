// internal/domain/checkout/totals.go
package checkout

import (
	"math"

	"github.com/your-org/shopstore/internal/config"
	"github.com/your-org/shopstore/internal/domain/cart"
)

// Totals is the price breakdown of a checkout
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Shipping   float64 `json:"shipping"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grand_total"`
}

// CalculateTotals computes the checkout totals from the cart lines and the
// shipping-and-tax policy: flat-rate shipping below the free-shipping
// threshold, free at or above it, and a fixed percentage tax on the
// subtotal. Pure function of its inputs.
func CalculateTotals(lines []cart.CartItem, policy config.CheckoutConfig) Totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.LineTotal()
	}

	var shipping float64
	if subtotal > 0 && subtotal < policy.FreeShippingThreshold {
		shipping = policy.ShippingFlatRate
	}

	tax := roundCents(subtotal * policy.TaxRate)

	return Totals{
		Subtotal:   roundCents(subtotal),
		Shipping:   shipping,
		Tax:        tax,
		GrandTotal: roundCents(subtotal + shipping + tax),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
