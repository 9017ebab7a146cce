package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/cart"
	appErrors "github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/errors"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/metrics"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/models"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/pricing"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/promotion"
	repository "github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/repositories"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/storage"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/wishlist"
)

// CheckoutService is the inbound surface the UI calls. Cart and wishlist
// operations return the updated view; promotion application returns a
// decision, where a rejected code is a normal outcome, not an error.
type CheckoutService interface {
	GetCart(ctx context.Context, sessionID string) (*models.CartView, error)
	AddCartItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.CartView, error)
	UpdateCartQuantity(ctx context.Context, sessionID string, req *models.UpdateQuantityRequest) (*models.CartView, error)
	RemoveCartItem(ctx context.Context, sessionID, productID string) (*models.CartView, error)
	ClearCart(ctx context.Context, sessionID string) (*models.CartView, error)

	GetWishlist(ctx context.Context, sessionID string) (*models.WishlistView, error)
	AddWishlistItem(ctx context.Context, sessionID string, req *models.AddWishlistItemRequest) (*models.WishlistView, error)
	RemoveWishlistItem(ctx context.Context, sessionID, productID string) (*models.WishlistView, error)
	ClearWishlist(ctx context.Context, sessionID string) (*models.WishlistView, error)

	ApplyPromotionCode(ctx context.Context, sessionID, code string) (*models.PromotionDecision, error)
	GetPricing(ctx context.Context, sessionID, code string) (*models.PromotionDecision, error)
	RedeemPromotion(ctx context.Context, promotionID string) error
	ActivePromotions(ctx context.Context) ([]models.Promotion, error)
	RefreshPromotions(ctx context.Context) error
}

type checkoutService struct {
	kv      storage.Store
	promos  repository.PromotionRepository
	catalog *promotion.Catalog
	now     func() time.Time
}

func NewCheckoutService(kv storage.Store, promos repository.PromotionRepository, catalog *promotion.Catalog) CheckoutService {
	return &checkoutService{
		kv:      kv,
		promos:  promos,
		catalog: catalog,
		now:     time.Now,
	}
}

func (s *checkoutService) cartStore(ctx context.Context, sessionID string) *cart.Store {
	return cart.NewStore(ctx, s.kv, sessionID)
}

func (s *checkoutService) wishlistStore(ctx context.Context, sessionID string) *wishlist.Store {
	return wishlist.NewStore(ctx, s.kv, sessionID)
}

func (s *checkoutService) GetCart(ctx context.Context, sessionID string) (*models.CartView, error) {
	return s.cartStore(ctx, sessionID).View(), nil
}

func (s *checkoutService) AddCartItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.CartView, error) {

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	store := s.cartStore(ctx, sessionID)

	if err := store.AddItem(ctx, req.ProductRef, quantity); err != nil {
		return nil, err
	}

	metrics.IncCartMutation("add_item")

	return store.View(), nil
}

func (s *checkoutService) UpdateCartQuantity(ctx context.Context, sessionID string, req *models.UpdateQuantityRequest) (*models.CartView, error) {

	store := s.cartStore(ctx, sessionID)

	if err := store.UpdateQuantity(ctx, req.ProductID, req.Quantity); err != nil {
		return nil, err
	}

	metrics.IncCartMutation("update_quantity")

	return store.View(), nil
}

func (s *checkoutService) RemoveCartItem(ctx context.Context, sessionID, productID string) (*models.CartView, error) {

	store := s.cartStore(ctx, sessionID)

	if err := store.RemoveItem(ctx, productID); err != nil {
		return nil, err
	}

	metrics.IncCartMutation("remove_item")

	return store.View(), nil
}

func (s *checkoutService) ClearCart(ctx context.Context, sessionID string) (*models.CartView, error) {

	store := s.cartStore(ctx, sessionID)

	if err := store.Clear(ctx); err != nil {
		return nil, err
	}

	metrics.IncCartMutation("clear")

	return store.View(), nil
}

func (s *checkoutService) GetWishlist(ctx context.Context, sessionID string) (*models.WishlistView, error) {
	return s.wishlistStore(ctx, sessionID).View(), nil
}

func (s *checkoutService) AddWishlistItem(ctx context.Context, sessionID string, req *models.AddWishlistItemRequest) (*models.WishlistView, error) {

	store := s.wishlistStore(ctx, sessionID)

	if err := store.AddItem(ctx, req.ProductRef); err != nil {
		return nil, err
	}

	return store.View(), nil
}

func (s *checkoutService) RemoveWishlistItem(ctx context.Context, sessionID, productID string) (*models.WishlistView, error) {

	store := s.wishlistStore(ctx, sessionID)

	if err := store.RemoveItem(ctx, productID); err != nil {
		return nil, err
	}

	return store.View(), nil
}

func (s *checkoutService) ClearWishlist(ctx context.Context, sessionID string) (*models.WishlistView, error) {

	store := s.wishlistStore(ctx, sessionID)

	if err := store.Clear(ctx); err != nil {
		return nil, err
	}

	return store.View(), nil
}

// ApplyPromotionCode validates the code against a fresh repository lookup,
// not the cached catalog, so the decision never acts on a stale usage count.
func (s *checkoutService) ApplyPromotionCode(ctx context.Context, sessionID, code string) (*models.PromotionDecision, error) {
	return s.decide(ctx, sessionID, code)
}

// GetPricing recomputes the amounts for the current cart, optionally under a
// promotion code. With an empty code it prices the bare cart.
func (s *checkoutService) GetPricing(ctx context.Context, sessionID, code string) (*models.PromotionDecision, error) {

	if code == "" {
		items := s.cartStore(ctx, sessionID).Items()

		return &models.PromotionDecision{
			Accepted: false,
			Pricing:  pricing.Compute(items, nil),
		}, nil
	}

	return s.decide(ctx, sessionID, code)
}

func (s *checkoutService) decide(ctx context.Context, sessionID, code string) (*models.PromotionDecision, error) {

	store := s.cartStore(ctx, sessionID)
	items := store.Items()

	var lookupErr error

	lookup := func(normalized string) (*models.Promotion, bool) {
		promo, err := s.promos.GetByCode(ctx, normalized)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				lookupErr = err
			}

			return nil, false
		}

		return promo, true
	}

	result := promotion.Validate(code, store.Subtotal(), s.now(), lookup)

	// A lookup that failed for infrastructure reasons must not masquerade
	// as a NotFound rejection.
	if lookupErr != nil {
		return nil, appErrors.DatabaseError("Failed to look up promotion code").WithError(lookupErr)
	}

	if !result.Accepted() {
		metrics.ObservePromotionValidation(string(result.Reason))

		return &models.PromotionDecision{
			Accepted: false,
			Reason:   string(result.Reason),
			Pricing:  pricing.Compute(items, nil),
		}, nil
	}

	metrics.ObservePromotionValidation("accepted")

	return &models.PromotionDecision{
		Accepted:  true,
		Promotion: result.Promotion,
		Pricing:   pricing.Compute(items, result.Promotion),
	}, nil
}

// RedeemPromotion requests the atomic usage increment from the promotion
// source. The validator's usage check is a pre-flight; this is the
// enforcement point, and exhaustion at commit time surfaces as a conflict.
func (s *checkoutService) RedeemPromotion(ctx context.Context, promotionID string) error {

	err := s.promos.IncrementUsage(ctx, promotionID)
	if err != nil {
		if errors.Is(err, repository.ErrUsageExhausted) {
			metrics.IncRedemptionConflict()

			return appErrors.UsageLimitReachedError("Promotion usage limit reached").WithError(err)
		}

		return appErrors.DatabaseError("Failed to redeem promotion").WithError(err)
	}

	return nil
}

func (s *checkoutService) ActivePromotions(ctx context.Context) ([]models.Promotion, error) {
	return s.catalog.Active(), nil
}

func (s *checkoutService) RefreshPromotions(ctx context.Context) error {

	if err := s.catalog.Refresh(ctx); err != nil {
		return appErrors.DatabaseError("Failed to refresh promotion catalog").WithError(err)
	}

	return nil
}
