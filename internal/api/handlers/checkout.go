package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/api/middleware"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/models"
	service "github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/services"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validator:       validator.New(),
	}
}

// ApplyPromotion validates a code against the current cart. A rejected code
// is a 200 with accepted=false and the specific reason; only infrastructure
// failures produce an error status.
func (h *CheckoutHandler) ApplyPromotion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.ApplyPromotionRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		decision, err := h.checkoutService.ApplyPromotionCode(r.Context(), session, req.Code)
		if err != nil {
			logger.Error("Failed to apply promotion code", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Promotion code decided",
			slog.Bool("accepted", decision.Accepted),
			slog.String("reason", decision.Reason))
		response.Success(w, http.StatusOK, decision)
	}
}

func (h *CheckoutHandler) Pricing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.PricingRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		decision, err := h.checkoutService.GetPricing(r.Context(), session, req.Code)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, decision)
	}
}

func (h *CheckoutHandler) Redeem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RedeemPromotionRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		if err := h.checkoutService.RedeemPromotion(r.Context(), req.PromotionID); err != nil {
			logger.Warn("Promotion redemption failed",
				slog.String("promotion_id", req.PromotionID),
				slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Promotion redeemed", slog.String("promotion_id", req.PromotionID))
		response.Success(w, http.StatusOK, map[string]string{"promotion_id": req.PromotionID})
	}
}
