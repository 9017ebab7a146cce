package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/api/handlers"
	appErrors "github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/errors"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/models"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/services/mocks"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupPromotionHandlerTest(t *testing.T) (*handlers.PromotionHandler, *mocks.CheckoutService) {
	t.Helper()

	mockService := new(mocks.CheckoutService)
	handler := handlers.NewPromotionHandler(mockService)

	return handler, mockService
}

func TestListActivePromotions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		handler, mockService := setupPromotionHandlerTest(t)
		promotions := []models.Promotion{{
			ID:           "promo-1",
			Code:         "SUMMER20",
			DiscountType: models.DiscountPercentage,
			StartDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
			IsActive:     true,
		}}
		mockService.On("ActivePromotions", mock.Anything).Return(promotions, nil).Once()

		req := testutils.CreateSessionRequest(http.MethodGet, "/api/v1/promotions", nil, "", nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListActive().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeAPIResponse(t, rr)
		assert.True(t, resp.Success)

		data, ok := resp.Data.([]any)
		require.True(t, ok)
		assert.Len(t, data, 1)
		mockService.AssertExpectations(t)
	})
}

func TestRefreshPromotions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		handler, mockService := setupPromotionHandlerTest(t)
		mockService.On("RefreshPromotions", mock.Anything).Return(nil).Once()

		req := testutils.CreateSessionRequest(http.MethodPost, "/api/v1/promotions/refresh", nil, "", nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Refresh().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Source Unavailable", func(t *testing.T) {
		// Arrange
		handler, mockService := setupPromotionHandlerTest(t)
		mockService.On("RefreshPromotions", mock.Anything).
			Return(appErrors.DatabaseError("Failed to refresh promotion catalog")).Once()

		req := testutils.CreateSessionRequest(http.MethodPost, "/api/v1/promotions/refresh", nil, "", nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Refresh().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		resp := decodeAPIResponse(t, rr)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, resp.Error.Code)
		mockService.AssertExpectations(t)
	})
}
