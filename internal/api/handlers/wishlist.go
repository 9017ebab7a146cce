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

type WishlistHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewWishlistHandler(checkoutService service.CheckoutService) *WishlistHandler {
	return &WishlistHandler{
		checkoutService: checkoutService,
		validator:       validator.New(),
	}
}

func (h *WishlistHandler) GetWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		view, err := h.checkoutService.GetWishlist(r.Context(), session)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *WishlistHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.AddWishlistItemRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		view, err := h.checkoutService.AddWishlistItem(r.Context(), session, &req)
		if err != nil {
			logger.Error("Failed to add wishlist item",
				slog.String("product_id", req.ProductID),
				slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *WishlistHandler) RemoveItem() http.HandlerFunc {
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

		view, err := h.checkoutService.RemoveWishlistItem(r.Context(), session, productID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *WishlistHandler) ClearWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		view, err := h.checkoutService.ClearWishlist(r.Context(), session)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}
