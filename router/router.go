// api/router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muralehq/murale/api/controller"
	"github.com/muralehq/murale/api/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	router.Use(middleware.AuthMiddleware())

	api := router.Group("/api/v1")

	controllers.Quote.RegisterRoutes(api)
	controllers.Order.RegisterRoutes(api)
	controllers.Catalog.RegisterRoutes(api)
	controllers.Image.RegisterRoutes(api)
	controllers.Room.RegisterRoutes(api)

	return router
}
