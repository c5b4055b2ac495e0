// api/controller/room_controller_test.go
package controller_test

import (
	"encoding/json"
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

func TestRoomController(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoomService := mock_service.NewMockIRoomService(ctrl)
	roomController := controller.NewRoomController(mockRoomService)
	router := setupRouter()
	api := router.Group("/")
	roomController.RegisterRoutes(api)

	t.Run("Visualize_Success", func(t *testing.T) {
		render := &model.RoomRender{
			ID:     "rnd-1",
			URL:    "https://api.visioncraft.ai/renders/rnd-1.png",
			Status: "completed",
		}
		mockRoomService.EXPECT().
			Visualize(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(render, nil)

		body := strings.NewReader(`{"base_image_url":"https://cdn.murale.io/rooms/r1.jpg","segments":[{"texture_url":"https://cdn.murale.io/tex/t1.png"}]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/rooms/visualize", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Visualize_Failure_NoUsableTextures", func(t *testing.T) {
		mockRoomService.EXPECT().
			Visualize(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, murale_errors.ErrInvalidRoomScene)

		body := strings.NewReader(`{"base_image_url":"https://cdn.murale.io/rooms/r1.jpg","segments":[{"texture_url":"not-a-url"}]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/rooms/visualize", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Visualize_Failure_RenderFailed", func(t *testing.T) {
		mockRoomService.EXPECT().
			Visualize(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, murale_errors.ErrRenderFailed)

		body := strings.NewReader(`{"base_image_url":"https://cdn.murale.io/rooms/r1.jpg"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/rooms/visualize", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("ValidateTextures_Success", func(t *testing.T) {
		mockRoomService.EXPECT().
			ValidateTextures(gomock.Any(), gomock.Any()).
			Return([]string{"https://cdn.murale.io/tex/t1.png"})

		body := strings.NewReader(`{"paths":["https://cdn.murale.io/tex/t1.png","bad-path"]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/rooms/textures/validate", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Valid []string `json:"valid"`
		}
		json.NewDecoder(w.Body).Decode(&response)
		assert.Equal(t, []string{"https://cdn.murale.io/tex/t1.png"}, response.Valid)
	})

	t.Run("ValidateTextures_Failure_MissingPaths", func(t *testing.T) {
		body := strings.NewReader(`{}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/rooms/textures/validate", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ResetTextureCache_Success", func(t *testing.T) {
		mockRoomService.EXPECT().
			ResetTextureCache(gomock.Any())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/rooms/textures/cache", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
