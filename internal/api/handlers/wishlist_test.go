package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/api/handlers"
	appErrors "github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/errors"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/models"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/services/mocks"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupWishlistHandlerTest(t *testing.T) (*handlers.WishlistHandler, *mocks.CheckoutService) {
	t.Helper()

	mockService := new(mocks.CheckoutService)
	handler := handlers.NewWishlistHandler(mockService)

	return handler, mockService
}

func TestGetWishlist(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		handler, mockService := setupWishlistHandlerTest(t)
		view := &models.WishlistView{
			Items: []models.WishlistEntry{{ProductID: "rug-kilim", Name: "Kilim Rug", UnitPrice: 320000}},
			Count: 1,
		}
		mockService.On("GetWishlist", mock.Anything, testSessionID).Return(view, nil).Once()

		req := testutils.CreateSessionRequest(http.MethodGet, "/api/v1/wishlist", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.GetWishlist().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeAPIResponse(t, rr)
		assert.True(t, resp.Success)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Session Header", func(t *testing.T) {
		// Arrange
		handler, mockService := setupWishlistHandlerTest(t)

		req := testutils.CreateSessionRequest(http.MethodGet, "/api/v1/wishlist", nil, "", nil)
		rr := httptest.NewRecorder()

		// Act
		handler.GetWishlist().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "GetWishlist", mock.Anything, mock.Anything)
	})
}

func TestAddWishlistItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		handler, mockService := setupWishlistHandlerTest(t)
		view := &models.WishlistView{
			Items: []models.WishlistEntry{{ProductID: "mirror-arch", Name: "Arched Mirror", UnitPrice: 185000}},
			Count: 1,
		}
		mockService.On("AddWishlistItem", mock.Anything, testSessionID, mock.AnythingOfType("*models.AddWishlistItemRequest")).
			Return(view, nil).Once()

		body, _ := json.Marshal(models.AddWishlistItemRequest{
			ProductRef: models.ProductRef{ProductID: "mirror-arch", Name: "Arched Mirror", UnitPrice: 185000},
		})
		req := testutils.CreateSessionRequest(http.MethodPost, "/api/v1/wishlist/items", bytes.NewReader(body), testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Validation Error", func(t *testing.T) {
		// Arrange
		handler, mockService := setupWishlistHandlerTest(t)

		body := []byte(`{"name": "Arched Mirror"}`)
		req := testutils.CreateSessionRequest(http.MethodPost, "/api/v1/wishlist/items", bytes.NewReader(body), testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeAPIResponse(t, rr)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		mockService.AssertNotCalled(t, "AddWishlistItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRemoveWishlistItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		handler, mockService := setupWishlistHandlerTest(t)
		mockService.On("RemoveWishlistItem", mock.Anything, testSessionID, "rug-kilim").
			Return(&models.WishlistView{}, nil).Once()

		req := testutils.CreateSessionRequest(http.MethodDelete, "/api/v1/wishlist/items/rug-kilim", nil, testSessionID,
			map[string]string{"id": "rug-kilim"})
		rr := httptest.NewRecorder()

		// Act
		handler.RemoveItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestClearWishlist(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		handler, mockService := setupWishlistHandlerTest(t)
		mockService.On("ClearWishlist", mock.Anything, testSessionID).
			Return(&models.WishlistView{}, nil).Once()

		req := testutils.CreateSessionRequest(http.MethodDelete, "/api/v1/wishlist", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ClearWishlist().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})
}
