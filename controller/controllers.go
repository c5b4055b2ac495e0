// api/controller/controllers.go
package controller

import "github.com/muralehq/murale/api/service"

type Controllers struct {
	Quote   *QuoteController
	Order   *OrderController
	Catalog *CatalogController
	Image   *ImageController
	Room    *RoomController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Quote:   NewQuoteController(services.Quote),
		Order:   NewOrderController(services.Order),
		Catalog: NewCatalogController(services.Catalog),
		Image:   NewImageController(services.Image),
		Room:    NewRoomController(services.Room),
	}
}
