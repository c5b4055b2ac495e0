// api/controller/order_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/muralehq/murale/api/controller"
	murale_errors "github.com/muralehq/murale/api/errors"
	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
	mock_service "github.com/muralehq/murale/api/test/service_mock"
)

const orderBody = `{
	"items": [{"sku":"canvas-30x40","image_url":"https://cdn.murale.io/art/a1.png","copies":1}],
	"recipient": {"name":"Ada Smith","address_line":"1 Main St","city":"Austin","country_code":"US"},
	"total_cost": 31.20
}`

func TestOrderController(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderService := mock_service.NewMockIOrderService(ctrl)
	orderController := controller.NewOrderController(mockOrderService)
	router := setupRouter()
	api := router.Group("/")
	orderController.RegisterRoutes(api)

	t.Run("CreateOrder_Success", func(t *testing.T) {
		mockOrderService.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&model.Order{ID: "ord-1", Status: model.OrderStatusSubmitted}, nil)

		body := strings.NewReader(orderBody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/orders", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CreateOrder_Failure_PriceDrift", func(t *testing.T) {
		mockOrderService.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, murale_errors.ErrPriceDrift)

		body := strings.NewReader(orderBody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/orders", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("CreateOrder_Failure_MissingRecipient", func(t *testing.T) {
		body := strings.NewReader(`{"items":[{"sku":"canvas-30x40","image_url":"https://cdn.murale.io/art/a1.png"}]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/orders", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetOrder_Success", func(t *testing.T) {
		mockOrderService.EXPECT().
			GetOrder(gomock.Any(), gomock.Any()).
			Return(&model.Order{ID: "ord-1", Status: model.OrderStatusSubmitted}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/orders/ord-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetOrder_Failure_NotFound", func(t *testing.T) {
		mockOrderService.EXPECT().
			GetOrder(gomock.Any(), gomock.Any()).
			Return(nil, murale_errors.ErrOrderNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/orders/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("RefreshOrderStatus_Success", func(t *testing.T) {
		update := &model.OrderStatusUpdate{
			OrderID:   "ord-1",
			Status:    model.OrderStatusShipped,
			UpdatedAt: time.Now(),
		}
		mockOrderService.EXPECT().
			RefreshOrderStatus(gomock.Any(), gomock.Any()).
			Return(update, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/orders/ord-1/status", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
