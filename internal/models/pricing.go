package models

// PricingResult is derived from cart lines plus at most one promotion and is
// never persisted. Invariant: Total = Subtotal - DiscountAmount, never
// negative because the discount is clamped to the subtotal.
type PricingResult struct {
	Subtotal       int64 `json:"subtotal"`
	DiscountAmount int64 `json:"discount_amount"`
	ShippingWaived bool  `json:"shipping_waived"`
	Total          int64 `json:"total"`
}
