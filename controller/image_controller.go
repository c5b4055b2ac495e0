// api/controller/image_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	murale_errors "github.com/muralehq/murale/api/errors"
	"github.com/muralehq/murale/api/model"
	"github.com/muralehq/murale/api/service"
	"github.com/muralehq/murale/api/util"
	helper_util "github.com/muralehq/murale/api/util/helper"
)

type ImageController struct {
	imageService service.IImageService
}

func NewImageController(imageService service.IImageService) *ImageController {
	return &ImageController{
		imageService: imageService,
	}
}

// RegisterRoutes registers the API routes
func (ic *ImageController) RegisterRoutes(r *gin.RouterGroup) {
	images := r.Group("/images")
	{
		images.GET("/curated", ic.ListCuratedImages)
		images.POST("/generate", ic.GenerateImages)
	}
	collections := r.Group("/collections")
	{
		collections.POST("", ic.CreateCollection)
		collections.GET("", ic.ListCollections)
		collections.GET("/:id", ic.GetCollection)
		collections.GET("/:id/images", ic.GetCollectionImages)
		collections.POST("/:id/images", ic.AddImageToCollection)
	}
}

// CreateCollection endpoint
func (ic *ImageController) CreateCollection(c *gin.Context) {
	var collection model.Collection
	if err := c.ShouldBindJSON(&collection); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid collection data", murale_errors.ErrInvalidCollectionData)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", murale_errors.ErrUnauthorized)
		return
	}

	createdCollection, err := ic.imageService.CreateCollection(c, collection, userID)
	if err != nil {
		switch err {
		case murale_errors.ErrInvalidCollectionData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid collection data", err)
		case murale_errors.ErrDatabaseOperation:
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create collection", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdCollection)
}

// GetCollection endpoint
func (ic *ImageController) GetCollection(c *gin.Context) {
	collectionID := c.Param("id")

	collection, err := ic.imageService.GetCollection(c, collectionID)
	if err != nil {
		if err == murale_errors.ErrCollectionNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Collection not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve collection", err)
		}
		return
	}

	c.JSON(http.StatusOK, collection)
}

// ListCollections endpoint
func (ic *ImageController) ListCollections(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	collections, err := ic.imageService.ListCollections(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list collections", err)
		return
	}

	c.JSON(http.StatusOK, collections)
}

// ListCuratedImages endpoint
func (ic *ImageController) ListCuratedImages(c *gin.Context) {
	theme := c.Query("theme")
	if theme == "" {
		util.RespondWithError(c, http.StatusBadRequest, "Missing theme parameter", murale_errors.ErrInvalidImageRequest)
		return
	}
	pages, err := strconv.Atoi(c.DefaultQuery("pages", "1"))
	if err != nil || pages < 1 {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pages parameter", murale_errors.ErrInvalidImageRequest)
		return
	}

	images, err := ic.imageService.ListCuratedImages(c, theme, pages)
	if err != nil {
		switch err {
		case murale_errors.ErrImageProvider:
			util.RespondWithError(c, http.StatusBadGateway, "Vision provider unavailable", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to list curated images", err)
		}
		return
	}

	c.JSON(http.StatusOK, images)
}

// GenerateImages endpoint
func (ic *ImageController) GenerateImages(c *gin.Context) {
	var req model.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid image request", murale_errors.ErrInvalidImageRequest)
		return
	}

	images, err := ic.imageService.GenerateImages(c, req)
	if err != nil {
		switch err {
		case murale_errors.ErrInvalidImageRequest:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid image request", err)
		case murale_errors.ErrImageProvider:
			util.RespondWithError(c, http.StatusBadGateway, "Vision provider unavailable", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to generate images", err)
		}
		return
	}

	c.JSON(http.StatusOK, images)
}

// GetCollectionImages endpoint
func (ic *ImageController) GetCollectionImages(c *gin.Context) {
	collectionID := c.Param("id")

	images, err := ic.imageService.GetCollectionImages(c, collectionID)
	if err != nil {
		if err == murale_errors.ErrCollectionNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Collection not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve collection images", err)
		}
		return
	}

	c.JSON(http.StatusOK, images)
}

// AddImageToCollection endpoint
func (ic *ImageController) AddImageToCollection(c *gin.Context) {
	collectionID := c.Param("id")
	var image model.CuratedImage
	if err := c.ShouldBindJSON(&image); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid image data", murale_errors.ErrInvalidImageRequest)
		return
	}

	if err := ic.imageService.AddImageToCollection(c, collectionID, image); err != nil {
		if err == murale_errors.ErrCollectionNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Collection not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to add image to collection", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
