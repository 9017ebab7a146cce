package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/api/middleware"
	appErrors "github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/errors"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/models"
	service "github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/services"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCartHandler(checkoutService service.CheckoutService) *CartHandler {
	return &CartHandler{
		checkoutService: checkoutService,
		validator:       validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		view, err := h.checkoutService.GetCart(r.Context(), session)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.AddCartItemRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		view, err := h.checkoutService.AddCartItem(r.Context(), session, &req)
		if err != nil {
			logger.Error("Failed to add cart item",
				slog.String("product_id", req.ProductID),
				slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Cart item added",
			slog.String("product_id", req.ProductID),
			slog.Int("item_count", view.ItemCount))
		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		view, err := h.checkoutService.UpdateCartQuantity(r.Context(), session, &req)
		if err != nil {
			logger.Error("Failed to update cart quantity",
				slog.String("product_id", req.ProductID),
				slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		productID := r.PathValue("id")
		if productID == "" {
			response.Error(w, appErrors.BadRequestError("Product ID is required"))

			return
		}

		view, err := h.checkoutService.RemoveCartItem(r.Context(), session, productID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		view, err := h.checkoutService.ClearCart(r.Context(), session)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}
