// api/service/image_service.go
package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/muralehq/murale/api/client"
	"github.com/muralehq/murale/api/dao"
	murale_errors "github.com/muralehq/murale/api/errors"
	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
	"github.com/muralehq/murale/api/util"
)

// IImageService defines the interface for curated image operations
type IImageService interface {
	ListCuratedImages(ctx context.Context, theme string, pages int) ([]model.CuratedImage, error)
	GenerateImages(ctx context.Context, req model.GenerateImageRequest) ([]model.CuratedImage, error)
	CreateCollection(ctx context.Context, collection model.Collection, creatorID string) (*model.Collection, error)
	GetCollection(ctx context.Context, collectionID string) (*model.Collection, error)
	ListCollections(ctx context.Context, limit, offset int) ([]*model.Collection, error)
	GetCollectionImages(ctx context.Context, collectionID string) ([]model.CuratedImage, error)
	AddImageToCollection(ctx context.Context, collectionID string, image model.CuratedImage) error
}

// ImageService fronts the vision provider for curated imagery, caching
// browse results in redis and persisting collection membership in the
// catalog graph.
type ImageService struct {
	visionClient   *client.VisionClient
	collectionDAO  *dao.CollectionDAO
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
}

var _ IImageService = &ImageService{}

// NewImageService creates a new instance of ImageService
func NewImageService(visionClient *client.VisionClient, collectionDAO *dao.CollectionDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService) *ImageService {
	return &ImageService{
		visionClient:   visionClient,
		collectionDAO:  collectionDAO,
		validationUtil: validationUtil,
		cacheService:   cacheService,
	}
}

// ListCuratedImages fetches up to pages pages of curated imagery for a
// theme, fanning the page fetches out concurrently.
func (s *ImageService) ListCuratedImages(ctx context.Context, theme string, pages int) ([]model.CuratedImage, error) {
	if pages <= 0 {
		pages = 1
	}

	cacheKey := fmt.Sprintf("%s:%d", theme, pages)
	cached, err := s.cacheService.GetCuratedImages(ctx, cacheKey)
	if err != nil {
		logger.Warn("Curated image cache lookup failed", zap.Error(err), zap.String("theme", theme))
	}
	if cached != nil {
		logger.Debug("Curated images served from cache", zap.String("cacheKey", cacheKey))
		return cached, nil
	}

	// First page tells us how many pages actually exist.
	first, totalPages, err := s.visionClient.ListCuratedImages(ctx, theme, 1)
	if err != nil {
		logger.Error("Failed to list curated images", zap.Error(err), zap.String("theme", theme))
		return nil, murale_errors.ErrImageProvider
	}
	if totalPages < pages {
		pages = totalPages
	}

	pageResults := make(map[int][]model.CuratedImage, pages)
	pageResults[1] = first

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for page := 2; page <= pages; page++ {
		page := page
		g.Go(func() error {
			images, _, err := s.visionClient.ListCuratedImages(gctx, theme, page)
			if err != nil {
				return err
			}
			mu.Lock()
			pageResults[page] = images
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("Failed to list curated image pages", zap.Error(err), zap.String("theme", theme))
		return nil, murale_errors.ErrImageProvider
	}

	pageNumbers := make([]int, 0, len(pageResults))
	for page := range pageResults {
		pageNumbers = append(pageNumbers, page)
	}
	sort.Ints(pageNumbers)

	var images []model.CuratedImage
	for _, page := range pageNumbers {
		images = append(images, pageResults[page]...)
	}

	if err := s.cacheService.SetCuratedImages(ctx, cacheKey, images); err != nil {
		logger.Warn("Failed to cache curated images", zap.Error(err), zap.String("cacheKey", cacheKey))
	}

	return images, nil
}

func (s *ImageService) GenerateImages(ctx context.Context, req model.GenerateImageRequest) ([]model.CuratedImage, error) {
	if req.Prompt == "" {
		return nil, murale_errors.ErrInvalidImageRequest
	}

	images, err := s.visionClient.GenerateImages(ctx, req)
	if err != nil {
		logger.Error("Failed to generate images", zap.Error(err))
		return nil, murale_errors.ErrImageProvider
	}
	return images, nil
}

func (s *ImageService) CreateCollection(ctx context.Context, collection model.Collection, creatorID string) (*model.Collection, error) {
	if err := s.validationUtil.ValidateCollection(collection); err != nil {
		logger.Warn("Invalid collection data", zap.Error(err))
		return nil, murale_errors.ErrInvalidCollectionData
	}

	collection.CreatedBy = creatorID
	collectionID, err := s.collectionDAO.CreateCollection(ctx, collection)
	if err != nil {
		logger.Error("Failed to create collection", zap.Error(err), zap.String("name", collection.Name))
		return nil, err
	}

	return s.collectionDAO.GetCollection(ctx, collectionID)
}

func (s *ImageService) GetCollection(ctx context.Context, collectionID string) (*model.Collection, error) {
	return s.collectionDAO.GetCollection(ctx, collectionID)
}

func (s *ImageService) ListCollections(ctx context.Context, limit, offset int) ([]*model.Collection, error) {
	return s.collectionDAO.ListCollections(ctx, limit, offset)
}

func (s *ImageService) GetCollectionImages(ctx context.Context, collectionID string) ([]model.CuratedImage, error) {
	return s.collectionDAO.GetCollectionImages(ctx, collectionID)
}

func (s *ImageService) AddImageToCollection(ctx context.Context, collectionID string, image model.CuratedImage) error {
	if image.ID == "" || image.URL == "" {
		return murale_errors.ErrInvalidImageRequest
	}
	return s.collectionDAO.AddImage(ctx, collectionID, image)
}
