package models

import "time"

type DiscountType string

const (
	DiscountPercentage   DiscountType = "percentage"
	DiscountFixedAmount  DiscountType = "fixed_amount"
	DiscountFreeShipping DiscountType = "free_shipping"
)

// Promotion is a read-only record owned by the administrative backend. For
// percentage promotions DiscountValue is whole percent (0-100); for
// fixed_amount it is piastres; free_shipping ignores it. EndDate is an
// exclusive upper bound. A nil UsageLimit means unlimited redemptions.
type Promotion struct {
	ID                 string       `json:"id"`
	Code               string       `json:"code"`
	DiscountType       DiscountType `json:"discount_type"`
	DiscountValue      int64        `json:"discount_value"`
	MinimumOrderAmount int64        `json:"minimum_order_amount"`
	StartDate          time.Time    `json:"start_date"`
	EndDate            time.Time    `json:"end_date"`
	UsageLimit         *int         `json:"usage_limit"`
	UsageCount         int          `json:"usage_count"`
	IsActive           bool         `json:"is_active"`
}

type ApplyPromotionRequest struct {
	Code string `json:"code" validate:"required"`
}

type PricingRequest struct {
	Code string `json:"code" validate:"omitempty"`
}

type RedeemPromotionRequest struct {
	PromotionID string `json:"promotion_id" validate:"required"`
}

// PromotionDecision is the outcome of applying a code to the current cart.
// A rejected code is a normal decision, not an error: Reason carries the
// specific rejection so the UI can render a per-reason message.
type PromotionDecision struct {
	Accepted  bool          `json:"accepted"`
	Reason    string        `json:"reason,omitempty"`
	Promotion *Promotion    `json:"promotion,omitempty"`
	Pricing   PricingResult `json:"pricing"`
}
