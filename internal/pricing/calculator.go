// Package pricing turns cart lines plus an optional promotion into the
// amounts shown at checkout. All arithmetic is in integer piastres;
// percentage discounts round down, a fixed, observable contract.
package pricing

import (
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/models"
)

// Compute derives subtotal, discount and total. promo may be nil. The
// discount never exceeds the subtotal, so the total never goes negative.
func Compute(items []models.CartLineItem, promo *models.Promotion) models.PricingResult {

	var subtotal int64

	for _, item := range items {
		subtotal += item.LineTotal()
	}

	result := models.PricingResult{
		Subtotal: subtotal,
		Total:    subtotal,
	}

	if promo == nil {
		return result
	}

	var discount int64

	switch promo.DiscountType {
	case models.DiscountPercentage:
		// Integer division floors for non-negative operands.
		discount = subtotal * promo.DiscountValue / 100
	case models.DiscountFixedAmount:
		discount = promo.DiscountValue
	case models.DiscountFreeShipping:
		// Shipping cost lives outside this core; only the waiver is signaled.
		result.ShippingWaived = true
	}

	if discount > subtotal {
		discount = subtotal
	}

	if discount < 0 {
		discount = 0
	}

	result.DiscountAmount = discount
	result.Total = subtotal - discount

	return result
}
