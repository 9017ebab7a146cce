package mocks

import (
	"context"

	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/models"
	"github.com/stretchr/testify/mock"
)

// CheckoutService is a testify mock of the service.CheckoutService
// interface for handler tests.
type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) GetCart(ctx context.Context, sessionID string) (*models.CartView, error) {
	args := m.Called(ctx, sessionID)

	if view := args.Get(0); view != nil {
		return view.(*models.CartView), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) AddCartItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.CartView, error) {
	args := m.Called(ctx, sessionID, req)

	if view := args.Get(0); view != nil {
		return view.(*models.CartView), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) UpdateCartQuantity(ctx context.Context, sessionID string, req *models.UpdateQuantityRequest) (*models.CartView, error) {
	args := m.Called(ctx, sessionID, req)

	if view := args.Get(0); view != nil {
		return view.(*models.CartView), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) RemoveCartItem(ctx context.Context, sessionID, productID string) (*models.CartView, error) {
	args := m.Called(ctx, sessionID, productID)

	if view := args.Get(0); view != nil {
		return view.(*models.CartView), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) ClearCart(ctx context.Context, sessionID string) (*models.CartView, error) {
	args := m.Called(ctx, sessionID)

	if view := args.Get(0); view != nil {
		return view.(*models.CartView), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) GetWishlist(ctx context.Context, sessionID string) (*models.WishlistView, error) {
	args := m.Called(ctx, sessionID)

	if view := args.Get(0); view != nil {
		return view.(*models.WishlistView), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) AddWishlistItem(ctx context.Context, sessionID string, req *models.AddWishlistItemRequest) (*models.WishlistView, error) {
	args := m.Called(ctx, sessionID, req)

	if view := args.Get(0); view != nil {
		return view.(*models.WishlistView), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) RemoveWishlistItem(ctx context.Context, sessionID, productID string) (*models.WishlistView, error) {
	args := m.Called(ctx, sessionID, productID)

	if view := args.Get(0); view != nil {
		return view.(*models.WishlistView), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) ClearWishlist(ctx context.Context, sessionID string) (*models.WishlistView, error) {
	args := m.Called(ctx, sessionID)

	if view := args.Get(0); view != nil {
		return view.(*models.WishlistView), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) ApplyPromotionCode(ctx context.Context, sessionID, code string) (*models.PromotionDecision, error) {
	args := m.Called(ctx, sessionID, code)

	if decision := args.Get(0); decision != nil {
		return decision.(*models.PromotionDecision), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) GetPricing(ctx context.Context, sessionID, code string) (*models.PromotionDecision, error) {
	args := m.Called(ctx, sessionID, code)

	if decision := args.Get(0); decision != nil {
		return decision.(*models.PromotionDecision), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) RedeemPromotion(ctx context.Context, promotionID string) error {
	args := m.Called(ctx, promotionID)

	return args.Error(0)
}

func (m *CheckoutService) ActivePromotions(ctx context.Context) ([]models.Promotion, error) {
	args := m.Called(ctx)

	if promotions := args.Get(0); promotions != nil {
		return promotions.([]models.Promotion), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) RefreshPromotions(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}
