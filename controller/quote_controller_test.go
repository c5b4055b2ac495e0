// api/controller/quote_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/muralehq/murale/api/controller"
	murale_errors "github.com/muralehq/murale/api/errors"
	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
	mock_service "github.com/muralehq/murale/api/test/service_mock"
)

func setupRouter() *gin.Engine {
	r := gin.Default()
	return r
}

func TestQuoteController(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuoteService := mock_service.NewMockIQuoteService(ctrl)
	quoteController := controller.NewQuoteController(mockQuoteService)
	router := setupRouter()
	api := router.Group("/")
	quoteController.RegisterRoutes(api)

	t.Run("GetQuote_Success", func(t *testing.T) {
		quote := &model.Quote{
			SKU:       "canvas-30x40",
			Currency:  "USD",
			ItemCost:  24.50,
			TotalCost: 31.20,
			Copies:    1,
			IssuedAt:  time.Now(),
		}
		mockQuoteService.EXPECT().
			GetQuote(gomock.Any(), gomock.Any()).
			Return(quote, nil)

		body := strings.NewReader(`{"sku":"canvas-30x40","attributes":{"Size":"30x40"},"destination_country":"US"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/quotes", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var responseQuote model.Quote
		json.NewDecoder(w.Body).Decode(&responseQuote)
		assert.Equal(t, quote.SKU, responseQuote.SKU)
		assert.Equal(t, quote.TotalCost, responseQuote.TotalCost)
	})

	t.Run("GetQuote_Failure_MissingSKU", func(t *testing.T) {
		body := strings.NewReader(`{"attributes":{"size":"30x40"}}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/quotes", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetQuote_Failure_ProviderDown", func(t *testing.T) {
		mockQuoteService.EXPECT().
			GetQuote(gomock.Any(), gomock.Any()).
			Return(nil, murale_errors.ErrQuoteProvider)

		body := strings.NewReader(`{"sku":"canvas-30x40"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/quotes", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("InvalidateQuote_Success", func(t *testing.T) {
		mockQuoteService.EXPECT().
			InvalidateQuote(gomock.Any(), gomock.Any()).
			Return(nil)

		body := strings.NewReader(`{"sku":"canvas-30x40","attributes":{"size":"30x40"}}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/quotes/invalidate", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
