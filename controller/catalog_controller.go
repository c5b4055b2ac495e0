// api/controller/catalog_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	murale_errors "github.com/muralehq/murale/api/errors"
	"github.com/muralehq/murale/api/model"
	"github.com/muralehq/murale/api/service"
	"github.com/muralehq/murale/api/util"
	helper_util "github.com/muralehq/murale/api/util/helper"
)

type CatalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// RegisterRoutes registers the API routes
func (cc *CatalogController) RegisterRoutes(r *gin.RouterGroup) {
	products := r.Group("/products")
	{
		products.POST("", cc.CreateProduct)
		products.PUT("/:id", cc.UpdateProduct)
		products.DELETE("/:id", cc.DeleteProduct)
		products.GET("/:id", cc.GetProduct)
		products.GET("", cc.ListProducts)
		products.POST("/search", cc.SearchProducts)
	}
}

// CreateProduct endpoint
func (cc *CatalogController) CreateProduct(c *gin.Context) {
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product data", murale_errors.ErrInvalidProductData)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", murale_errors.ErrUnauthorized)
		return
	}

	createdProduct, err := cc.catalogService.CreateProduct(c, product, userID)
	if err != nil {
		switch err {
		case murale_errors.ErrProductConflict:
			util.RespondWithError(c, http.StatusConflict, "Product already exists", err)
		case murale_errors.ErrDatabaseOperation:
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		case murale_errors.ErrInternalServer:
			util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create product", murale_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, createdProduct)
}

// UpdateProduct endpoint
func (cc *CatalogController) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product data", err)
		return
	}
	product.ID = productID
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	updatedProduct, err := cc.catalogService.UpdateProduct(c, product, userID)
	if err != nil {
		if err == murale_errors.ErrProductNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Product not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update product", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedProduct)
}

// DeleteProduct endpoint
func (cc *CatalogController) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := cc.catalogService.DeleteProduct(c, productID, userID); err != nil {
		if err == murale_errors.ErrProductNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Product not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetProduct endpoint
func (cc *CatalogController) GetProduct(c *gin.Context) {
	productID := c.Param("id")

	product, err := cc.catalogService.GetProduct(c, productID)
	if err != nil {
		if errors.Is(err, murale_errors.ErrProductNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Product not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve product", err)
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts endpoint
func (cc *CatalogController) ListProducts(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	products, err := cc.catalogService.ListProducts(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list products", err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// SearchProducts endpoint
func (cc *CatalogController) SearchProducts(c *gin.Context) {
	var criteria model.ProductSearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid search criteria", err)
		return
	}
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	products, err := cc.catalogService.SearchProducts(c, criteria, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to search products", err)
		return
	}

	c.JSON(http.StatusOK, products)
}
