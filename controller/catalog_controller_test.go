// api/controller/catalog_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/muralehq/murale/api/controller"
	murale_errors "github.com/muralehq/murale/api/errors"
	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
	mock_service "github.com/muralehq/murale/api/test/service_mock"
)

func TestCatalogController(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalogService := mock_service.NewMockICatalogService(ctrl)
	catalogController := controller.NewCatalogController(mockCatalogService)
	router := setupRouter()
	api := router.Group("/")
	catalogController.RegisterRoutes(api)

	t.Run("CreateProduct_Success", func(t *testing.T) {
		mockCatalogService.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&model.Product{ID: "1", SKU: "canvas-30x40"}, nil)

		body := strings.NewReader(`{"sku":"canvas-30x40","name":"Canvas 30x40"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/products", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CreateProduct_Failure_Conflict", func(t *testing.T) {
		mockCatalogService.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, murale_errors.ErrProductConflict)

		body := strings.NewReader(`{"sku":"canvas-30x40","name":"Canvas 30x40"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/products", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("UpdateProduct_Failure_NotFound", func(t *testing.T) {
		mockCatalogService.EXPECT().
			UpdateProduct(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, murale_errors.ErrProductNotFound)

		body := strings.NewReader(`{"name":"Updated Canvas"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/products/1", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DeleteProduct_Success", func(t *testing.T) {
		mockCatalogService.EXPECT().
			DeleteProduct(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/products/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("GetProduct_Success", func(t *testing.T) {
		mockCatalogService.EXPECT().
			GetProduct(gomock.Any(), gomock.Any()).
			Return(&model.Product{ID: "1", SKU: "canvas-30x40"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/products/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ListProducts_Success", func(t *testing.T) {
		products := []*model.Product{
			{ID: "1", SKU: "canvas-30x40"},
			{ID: "2", SKU: "poster-50x70"},
		}
		mockCatalogService.EXPECT().
			ListProducts(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(products, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/products", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("SearchProducts_Success", func(t *testing.T) {
		products := []*model.Product{
			{ID: "1", SKU: "canvas-30x40"},
		}
		mockCatalogService.EXPECT().
			SearchProducts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(products, nil)

		body := strings.NewReader(`{"query":"canvas"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/products/search", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
