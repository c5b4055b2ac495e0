// api/controller/room_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	murale_errors "github.com/muralehq/murale/api/errors"
	"github.com/muralehq/murale/api/model"
	"github.com/muralehq/murale/api/service"
	"github.com/muralehq/murale/api/util"
)

type RoomController struct {
	roomService service.IRoomService
}

func NewRoomController(roomService service.IRoomService) *RoomController {
	return &RoomController{
		roomService: roomService,
	}
}

// RegisterRoutes registers the API routes
func (rc *RoomController) RegisterRoutes(r *gin.RouterGroup) {
	rooms := r.Group("/rooms")
	{
		rooms.POST("/visualize", rc.Visualize)
		rooms.POST("/textures/validate", rc.ValidateTextures)
		rooms.DELETE("/textures/cache", rc.ResetTextureCache)
	}
}

// Visualize endpoint
func (rc *RoomController) Visualize(c *gin.Context) {
	var scene model.RoomScene
	if err := c.ShouldBindJSON(&scene); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid room scene", murale_errors.ErrInvalidRoomScene)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", murale_errors.ErrUnauthorized)
		return
	}

	render, err := rc.roomService.Visualize(c, scene, userID)
	if err != nil {
		switch err {
		case murale_errors.ErrInvalidRoomScene:
			util.RespondWithError(c, http.StatusBadRequest, "No usable textures in scene", err)
		case murale_errors.ErrRenderFailed:
			util.RespondWithError(c, http.StatusUnprocessableEntity, "Room render failed", err)
		case murale_errors.ErrImageProvider:
			util.RespondWithError(c, http.StatusBadGateway, "Vision provider unavailable", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to visualize room", murale_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, render)
}

// ValidateTextures endpoint
func (rc *RoomController) ValidateTextures(c *gin.Context) {
	var req struct {
		Paths []string `json:"paths" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid texture paths", err)
		return
	}

	valid := rc.roomService.ValidateTextures(c, req.Paths)

	c.JSON(http.StatusOK, gin.H{"valid": valid})
}

// ResetTextureCache endpoint
func (rc *RoomController) ResetTextureCache(c *gin.Context) {
	rc.roomService.ResetTextureCache(c)
	c.Status(http.StatusNoContent)
}
