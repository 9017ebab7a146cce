package pricing_test

import (
	"testing"
	"time"

	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/models"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/pricing"
	"github.com/stretchr/testify/assert"
)

func makePromotion(discountType models.DiscountType, value int64) *models.Promotion {
	return &models.Promotion{
		ID:            "promo-1",
		Code:          "TEST",
		DiscountType:  discountType,
		DiscountValue: value,
		StartDate:     time.Now().Add(-time.Hour),
		EndDate:       time.Now().Add(time.Hour),
		IsActive:      true,
	}
}

func TestCompute(t *testing.T) {

	items := []models.CartLineItem{
		{ProductID: "p1", Name: "Ceramic Tile", UnitPrice: 50000, Quantity: 2},
		{ProductID: "p2", Name: "Grout Bag", UnitPrice: 25000, Quantity: 2},
	}
	// subtotal 150000

	t.Run("Empty Cart", func(t *testing.T) {
		result := pricing.Compute(nil, nil)

		assert.Equal(t, int64(0), result.Subtotal)
		assert.Equal(t, int64(0), result.DiscountAmount)
		assert.Equal(t, int64(0), result.Total)
		assert.False(t, result.ShippingWaived)
	})

	t.Run("No Promotion", func(t *testing.T) {
		result := pricing.Compute(items, nil)

		assert.Equal(t, int64(150000), result.Subtotal)
		assert.Equal(t, int64(0), result.DiscountAmount)
		assert.Equal(t, int64(150000), result.Total)
		assert.False(t, result.ShippingWaived)
	})

	t.Run("Percentage Discount", func(t *testing.T) {
		result := pricing.Compute(items, makePromotion(models.DiscountPercentage, 20))

		assert.Equal(t, int64(150000), result.Subtotal)
		assert.Equal(t, int64(30000), result.DiscountAmount)
		assert.Equal(t, int64(120000), result.Total)
	})

	t.Run("Percentage Discount Rounds Down", func(t *testing.T) {
		oddItems := []models.CartLineItem{
			{ProductID: "p1", UnitPrice: 999, Quantity: 1},
		}

		// 15% of 999 is 149.85; integer arithmetic floors to 149.
		result := pricing.Compute(oddItems, makePromotion(models.DiscountPercentage, 15))

		assert.Equal(t, int64(149), result.DiscountAmount)
		assert.Equal(t, int64(850), result.Total)
	})

	t.Run("Full Percentage Discount", func(t *testing.T) {
		result := pricing.Compute(items, makePromotion(models.DiscountPercentage, 100))

		assert.Equal(t, int64(150000), result.DiscountAmount)
		assert.Equal(t, int64(0), result.Total)
	})

	t.Run("Fixed Amount Discount", func(t *testing.T) {
		result := pricing.Compute(items, makePromotion(models.DiscountFixedAmount, 40000))

		assert.Equal(t, int64(40000), result.DiscountAmount)
		assert.Equal(t, int64(110000), result.Total)
	})

	t.Run("Fixed Amount Clamped To Subtotal", func(t *testing.T) {
		smallCart := []models.CartLineItem{
			{ProductID: "p1", UnitPrice: 30000, Quantity: 1},
		}

		result := pricing.Compute(smallCart, makePromotion(models.DiscountFixedAmount, 50000))

		assert.Equal(t, int64(30000), result.DiscountAmount)
		assert.Equal(t, int64(0), result.Total, "Total must never go negative")
	})

	t.Run("Free Shipping", func(t *testing.T) {
		result := pricing.Compute(items, makePromotion(models.DiscountFreeShipping, 0))

		assert.Equal(t, int64(0), result.DiscountAmount)
		assert.Equal(t, int64(150000), result.Total)
		assert.True(t, result.ShippingWaived)
	})

	t.Run("Quantity Multiplies Unit Price", func(t *testing.T) {
		result := pricing.Compute([]models.CartLineItem{
			{ProductID: "p1", UnitPrice: 12345, Quantity: 3},
		}, nil)

		assert.Equal(t, int64(37035), result.Subtotal)
	})
}
