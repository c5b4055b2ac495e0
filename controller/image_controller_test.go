// api/controller/image_controller_test.go
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

func TestImageController(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImageService := mock_service.NewMockIImageService(ctrl)
	imageController := controller.NewImageController(mockImageService)
	router := setupRouter()
	api := router.Group("/")
	imageController.RegisterRoutes(api)

	t.Run("ListCuratedImages_Success", func(t *testing.T) {
		images := []model.CuratedImage{
			{ID: "img-1", URL: "https://api.visioncraft.ai/img/1.png"},
		}
		mockImageService.EXPECT().
			ListCuratedImages(gomock.Any(), "coastal", 2).
			Return(images, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/images/curated?theme=coastal&pages=2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ListCuratedImages_Failure_MissingTheme", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/images/curated", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GenerateImages_Success", func(t *testing.T) {
		mockImageService.EXPECT().
			GenerateImages(gomock.Any(), gomock.Any()).
			Return([]model.CuratedImage{{ID: "gen-1", URL: "https://api.visioncraft.ai/img/gen-1.png"}}, nil)

		body := strings.NewReader(`{"prompt":"abstract dunes at dawn"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/images/generate", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("CreateCollection_Success", func(t *testing.T) {
		mockImageService.EXPECT().
			CreateCollection(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&model.Collection{ID: "col-1", Name: "Coastal Calm"}, nil)

		body := strings.NewReader(`{"name":"Coastal Calm"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/collections", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CreateCollection_Failure_InvalidData", func(t *testing.T) {
		mockImageService.EXPECT().
			CreateCollection(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, murale_errors.ErrInvalidCollectionData)

		body := strings.NewReader(`{"description":"no name"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/collections", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetCollection_Failure_NotFound", func(t *testing.T) {
		mockImageService.EXPECT().
			GetCollection(gomock.Any(), gomock.Any()).
			Return(nil, murale_errors.ErrCollectionNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/collections/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ListCollections_Success", func(t *testing.T) {
		collections := []*model.Collection{
			{ID: "col-1", Name: "Coastal Calm"},
			{ID: "col-2", Name: "Mid-Century"},
		}
		mockImageService.EXPECT().
			ListCollections(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(collections, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/collections", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetCollectionImages_Success", func(t *testing.T) {
		mockImageService.EXPECT().
			GetCollectionImages(gomock.Any(), gomock.Any()).
			Return([]model.CuratedImage{{ID: "img-1", URL: "https://api.visioncraft.ai/img/1.png"}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/collections/col-1/images", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
