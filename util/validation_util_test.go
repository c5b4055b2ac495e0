// api/util/validation_util_test.go
package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muralehq/murale/api/model"
	"github.com/muralehq/murale/api/util"
)

func TestValidateRoomScene(t *testing.T) {
	v := util.NewValidationUtil()

	t.Run("ValidWithSegments", func(t *testing.T) {
		err := v.ValidateRoomScene(model.RoomScene{
			BaseImageURL: "https://cdn.murale.io/rooms/r1.jpg",
			Segments:     []model.WallSegment{{TextureURL: "https://cdn.murale.io/tex/t1.png"}},
		})
		assert.NoError(t, err)
	})

	t.Run("ValidWithWallColorOnly", func(t *testing.T) {
		err := v.ValidateRoomScene(model.RoomScene{
			BaseImageURL: "https://cdn.murale.io/rooms/r1.jpg",
			WallColorHex: "#aabbcc",
		})
		assert.NoError(t, err)
	})

	t.Run("MissingBaseImage", func(t *testing.T) {
		err := v.ValidateRoomScene(model.RoomScene{
			Segments: []model.WallSegment{{TextureURL: "https://cdn.murale.io/tex/t1.png"}},
		})
		assert.Error(t, err)
	})

	t.Run("NoSegmentsAndNoWallColor", func(t *testing.T) {
		err := v.ValidateRoomScene(model.RoomScene{
			BaseImageURL: "https://cdn.murale.io/rooms/r1.jpg",
		})
		assert.Error(t, err)
	})
}

func TestValidateCollection(t *testing.T) {
	v := util.NewValidationUtil()

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, v.ValidateCollection(model.Collection{Name: "Coastal Calm"}))
	})

	t.Run("MissingName", func(t *testing.T) {
		assert.Error(t, v.ValidateCollection(model.Collection{}))
	})
}
