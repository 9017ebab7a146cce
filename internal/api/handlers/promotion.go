package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/api/middleware"
	service "github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/services"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/utils/response"
)

type PromotionHandler struct {
	checkoutService service.CheckoutService
}

func NewPromotionHandler(checkoutService service.CheckoutService) *PromotionHandler {
	return &PromotionHandler{checkoutService: checkoutService}
}

// ListActive serves the cached catalog; it may lag the backend by one
// refresh interval.
func (h *PromotionHandler) ListActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		promotions, err := h.checkoutService.ActivePromotions(r.Context())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, promotions)
	}
}

func (h *PromotionHandler) Refresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.checkoutService.RefreshPromotions(r.Context()); err != nil {
			logger.Error("Failed to refresh promotion catalog", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]string{"status": "refreshed"})
	}
}
