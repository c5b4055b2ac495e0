// api/service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/muralehq/murale/api/audit"
	"github.com/muralehq/murale/api/client"
	"github.com/muralehq/murale/api/dao"
	"github.com/muralehq/murale/api/util"
)

type Services struct {
	Quote   IQuoteService
	Order   IOrderService
	Catalog ICatalogService
	Image   IImageService
	Room    IRoomService
}

func InitializeServices(
	driver neo4j.Driver,
	printClient *client.PrintClient,
	visionClient *client.VisionClient,
	storageClient *client.StorageClient,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	textureValidator *util.TextureValidator,
	eventBus *util.EventBus,
) (*Services, error) {
	productDAO := dao.NewProductDAO(driver, auditService)
	collectionDAO := dao.NewCollectionDAO(driver, auditService)

	quoteService := NewQuoteService(printClient, validationUtil, cacheService, auditService, eventBus)

	services := &Services{
		Quote:   quoteService,
		Order:   NewOrderService(printClient, quoteService, validationUtil, cacheService, notificationSvc, auditService, eventBus),
		Catalog: NewCatalogService(productDAO, validationUtil, cacheService, eventBus),
		Image:   NewImageService(visionClient, collectionDAO, validationUtil, cacheService),
		Room:    NewRoomService(visionClient, storageClient, textureValidator, validationUtil, notificationSvc, eventBus),
	}

	return services, nil
}
