// api/service/catalog_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/muralehq/murale/api/dao"
	murale_errors "github.com/muralehq/murale/api/errors"
	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
	"github.com/muralehq/murale/api/util"
)

// ICatalogService defines the interface for product catalog operations
type ICatalogService interface {
	CreateProduct(ctx context.Context, product model.Product, creatorID string) (*model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product, updaterID string) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID string, deleterID string) error
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
	ListProducts(ctx context.Context, limit int, offset int) ([]*model.Product, error)
	SearchProducts(ctx context.Context, criteria model.ProductSearchCriteria, limit, offset int) ([]*model.Product, error)
}

// CatalogService handles business logic for product catalog operations
type CatalogService struct {
	productDAO     *dao.ProductDAO
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
	eventBus       *util.EventBus
}

var _ ICatalogService = &CatalogService{}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(productDAO *dao.ProductDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService, eventBus *util.EventBus) *CatalogService {
	return &CatalogService{
		productDAO:     productDAO,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		eventBus:       eventBus,
	}
}

func (s *CatalogService) CreateProduct(ctx context.Context, product model.Product, creatorID string) (*model.Product, error) {
	if err := s.validationUtil.ValidateProduct(product); err != nil {
		logger.Warn("Invalid product data", zap.Error(err), zap.String("sku", product.SKU))
		return nil, murale_errors.ErrInvalidProductData
	}

	product.CreatedBy = creatorID
	product.UpdatedBy = creatorID
	if product.Status == "" {
		product.Status = "active"
	}

	productID, err := s.productDAO.CreateProduct(ctx, product)
	if err != nil {
		logger.Error("Failed to create product", zap.Error(err), zap.String("sku", product.SKU))
		return nil, err
	}

	created, err := s.productDAO.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetProduct(ctx, *created); err != nil {
		logger.Warn("Failed to cache product", zap.Error(err), zap.String("productID", productID))
	}
	s.eventBus.Publish(ctx, util.EventProductUpdated, *created)

	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product model.Product, updaterID string) (*model.Product, error) {
	if err := s.validationUtil.ValidateProduct(product); err != nil {
		logger.Warn("Invalid product data", zap.Error(err), zap.String("productID", product.ID))
		return nil, murale_errors.ErrInvalidProductData
	}

	product.UpdatedBy = updaterID
	updated, err := s.productDAO.UpdateProduct(ctx, product)
	if err != nil {
		logger.Error("Failed to update product", zap.Error(err), zap.String("productID", product.ID))
		return nil, err
	}

	if err := s.cacheService.SetProduct(ctx, *updated); err != nil {
		logger.Warn("Failed to refresh cached product", zap.Error(err), zap.String("productID", product.ID))
	}
	s.eventBus.Publish(ctx, util.EventProductUpdated, *updated)

	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, productID string, deleterID string) error {
	if err := s.productDAO.DeleteProduct(ctx, productID); err != nil {
		logger.Error("Failed to delete product", zap.Error(err), zap.String("productID", productID))
		return err
	}

	if err := s.cacheService.DeleteProduct(ctx, productID); err != nil {
		logger.Warn("Failed to evict cached product", zap.Error(err), zap.String("productID", productID))
	}

	return nil
}

func (s *CatalogService) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	cached, err := s.cacheService.GetProduct(ctx, productID)
	if err != nil {
		logger.Warn("Product cache lookup failed", zap.Error(err), zap.String("productID", productID))
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.productDAO.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetProduct(ctx, *product); err != nil {
		logger.Warn("Failed to cache product", zap.Error(err), zap.String("productID", productID))
	}

	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, limit int, offset int) ([]*model.Product, error) {
	return s.productDAO.ListProducts(ctx, limit, offset)
}

func (s *CatalogService) SearchProducts(ctx context.Context, criteria model.ProductSearchCriteria, limit, offset int) ([]*model.Product, error) {
	return s.productDAO.SearchProducts(ctx, criteria, limit, offset)
}
