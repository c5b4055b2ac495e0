// api/util/cache_service.go

package util

import (
	"context"

	"github.com/muralehq/murale/api/db"
	"github.com/muralehq/murale/api/model"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetQuote(ctx context.Context, quoteKey string) (*model.Quote, error) {
	return db.GetCachedQuote(ctx, quoteKey)
}

func (c *CacheService) SetQuote(ctx context.Context, quoteKey string, quote model.Quote) error {
	return db.CacheQuote(ctx, quoteKey, &quote)
}

func (c *CacheService) DeleteQuote(ctx context.Context, quoteKey string) error {
	return db.DeleteCachedQuote(ctx, quoteKey)
}

func (c *CacheService) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	return db.GetCachedOrder(ctx, orderID)
}

func (c *CacheService) SetOrder(ctx context.Context, order model.Order) error {
	return db.CacheOrder(ctx, &order)
}

func (c *CacheService) DeleteOrder(ctx context.Context, orderID string) error {
	return db.DeleteCachedOrder(ctx, orderID)
}

func (c *CacheService) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	return db.GetCachedProduct(ctx, productID)
}

func (c *CacheService) SetProduct(ctx context.Context, product model.Product) error {
	return db.CacheProduct(ctx, &product)
}

func (c *CacheService) DeleteProduct(ctx context.Context, productID string) error {
	return db.DeleteCachedProduct(ctx, productID)
}

func (c *CacheService) GetCuratedImages(ctx context.Context, cacheKey string) ([]model.CuratedImage, error) {
	return db.GetCachedCuratedImages(ctx, cacheKey)
}

func (c *CacheService) SetCuratedImages(ctx context.Context, cacheKey string, images []model.CuratedImage) error {
	return db.CacheCuratedImages(ctx, cacheKey, images)
}
