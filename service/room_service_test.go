// api/service/room_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	murale_errors "github.com/muralehq/murale/api/errors"
	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
	"github.com/muralehq/murale/api/util"
)

func newTestRoomService() *RoomService {
	return NewRoomService(nil, nil, util.NewTextureValidator(), util.NewValidationUtil(), util.NewNotificationService(), util.NewEventBus())
}

func TestRoomServiceVisualizeSceneValidation(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	t.Run("MissingBaseImage", func(t *testing.T) {
		service := newTestRoomService()
		scene := model.RoomScene{
			Segments: []model.WallSegment{{TextureURL: "https://cdn.murale.io/tex/t1.png"}},
		}

		_, err := service.Visualize(context.Background(), scene, "user-1")
		assert.ErrorIs(t, err, murale_errors.ErrInvalidRoomScene)
	})

	t.Run("NoSegmentsAndNoWallColor", func(t *testing.T) {
		service := newTestRoomService()
		scene := model.RoomScene{BaseImageURL: "https://cdn.murale.io/rooms/r1.jpg"}

		_, err := service.Visualize(context.Background(), scene, "user-1")
		assert.ErrorIs(t, err, murale_errors.ErrInvalidRoomScene)
	})

	t.Run("AllTexturesRejectedLeavesSceneInvalid", func(t *testing.T) {
		service := newTestRoomService()
		scene := model.RoomScene{
			BaseImageURL: "https://cdn.murale.io/rooms/r1.jpg",
			Segments: []model.WallSegment{
				{TextureURL: "not-a-url"},
				{TextureURL: ""},
			},
		}

		_, err := service.Visualize(context.Background(), scene, "user-1")
		assert.ErrorIs(t, err, murale_errors.ErrInvalidRoomScene)
	})
}
