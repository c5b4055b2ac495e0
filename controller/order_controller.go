// api/controller/order_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	murale_errors "github.com/muralehq/murale/api/errors"
	"github.com/muralehq/murale/api/model"
	"github.com/muralehq/murale/api/service"
	"github.com/muralehq/murale/api/util"
)

type OrderController struct {
	orderService service.IOrderService
}

func NewOrderController(orderService service.IOrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// RegisterRoutes registers the API routes
func (oc *OrderController) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders")
	{
		orders.POST("", oc.CreateOrder)
		orders.GET("/:id", oc.GetOrder)
		orders.GET("/:id/status", oc.RefreshOrderStatus)
	}
}

// CreateOrder endpoint
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var order model.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid order data", murale_errors.ErrInvalidOrderData)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", murale_errors.ErrUnauthorized)
		return
	}

	createdOrder, err := oc.orderService.CreateOrder(c, order, userID)
	if err != nil {
		switch err {
		case murale_errors.ErrInvalidOrderData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid order data", err)
		case murale_errors.ErrPriceDrift:
			util.RespondWithError(c, http.StatusConflict, "Order total no longer matches current pricing", err)
		case murale_errors.ErrOrderConflict:
			util.RespondWithError(c, http.StatusConflict, "Order submission already in progress", err)
		case murale_errors.ErrOrderProvider:
			util.RespondWithError(c, http.StatusBadGateway, "Print provider unavailable", err)
		case murale_errors.ErrInternalServer:
			util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create order", murale_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, createdOrder)
}

// GetOrder endpoint
func (oc *OrderController) GetOrder(c *gin.Context) {
	orderID := c.Param("id")

	order, err := oc.orderService.GetOrder(c, orderID)
	if err != nil {
		if errors.Is(err, murale_errors.ErrOrderNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Order not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve order", err)
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// RefreshOrderStatus endpoint
func (oc *OrderController) RefreshOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	update, err := oc.orderService.RefreshOrderStatus(c, orderID)
	if err != nil {
		switch err {
		case murale_errors.ErrOrderNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Order not found", err)
		case murale_errors.ErrOrderProvider:
			util.RespondWithError(c, http.StatusBadGateway, "Print provider unavailable", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to refresh order status", err)
		}
		return
	}

	c.JSON(http.StatusOK, update)
}
