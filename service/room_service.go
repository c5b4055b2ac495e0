// api/service/room_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muralehq/murale/api/client"
	murale_errors "github.com/muralehq/murale/api/errors"
	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
	"github.com/muralehq/murale/api/util"
)

// IRoomService defines the interface for room visualization operations
type IRoomService interface {
	Visualize(ctx context.Context, scene model.RoomScene, userID string) (*model.RoomRender, error)
	ValidateTextures(ctx context.Context, paths []string) []string
	ResetTextureCache(ctx context.Context)
}

// RoomService composites textures onto room photos through the vision
// provider. Texture URLs pass through the optimistic validator before a
// render, and the provider's per-texture load outcomes are fed back so a
// texture that failed to load stays rejected on later requests.
type RoomService struct {
	visionClient     *client.VisionClient
	storageClient    *client.StorageClient
	textureValidator *util.TextureValidator
	validationUtil   *util.ValidationUtil
	notificationSvc  *util.NotificationService
	eventBus         *util.EventBus
}

var _ IRoomService = &RoomService{}

// NewRoomService creates a new instance of RoomService
func NewRoomService(visionClient *client.VisionClient, storageClient *client.StorageClient, textureValidator *util.TextureValidator, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *RoomService {
	return &RoomService{
		visionClient:     visionClient,
		storageClient:    storageClient,
		textureValidator: textureValidator,
		validationUtil:   validationUtil,
		notificationSvc:  notificationSvc,
		eventBus:         eventBus,
	}
}

func (s *RoomService) Visualize(ctx context.Context, scene model.RoomScene, userID string) (*model.RoomRender, error) {
	// Drop segments whose texture the validator already knows to be bad.
	segments := make([]model.WallSegment, 0, len(scene.Segments))
	for _, segment := range scene.Segments {
		if s.textureValidator.Validate(segment.TextureURL) {
			segments = append(segments, segment)
		} else {
			logger.Debug("Dropping segment with invalid texture",
				zap.String("label", segment.Label),
				zap.String("textureURL", segment.TextureURL))
		}
	}
	scene.Segments = segments

	if err := s.validationUtil.ValidateRoomScene(scene); err != nil {
		logger.Warn("Invalid room scene", zap.Error(err))
		return nil, murale_errors.ErrInvalidRoomScene
	}

	render, err := s.visionClient.RenderRoom(ctx, scene)
	if err != nil {
		logger.Error("Room render failed", zap.Error(err))
		return nil, murale_errors.ErrRenderFailed
	}

	// Close the optimistic-validation feedback loop with the provider's
	// actual load results.
	for _, result := range render.TextureResults {
		if result.Loaded {
			s.textureValidator.MarkValid(result.TextureURL)
		} else {
			logger.Warn("Texture failed to load during render",
				zap.String("textureURL", result.TextureURL),
				zap.String("reason", result.Reason))
			s.textureValidator.MarkInvalid(result.TextureURL)
		}
	}

	if render.Status != "completed" {
		return nil, murale_errors.ErrRenderFailed
	}

	if render.ID == "" {
		render.ID = uuid.New().String()
	}

	// Pin the short-lived provider URL into durable storage.
	objectPath := fmt.Sprintf("renders/%s.png", render.ID)
	storageURL, err := s.storageClient.CopyFromURL(ctx, render.URL, objectPath)
	if err != nil {
		// The render itself succeeded; serve the provider URL and move on.
		logger.Warn("Failed to pin render into storage", zap.Error(err), zap.String("renderID", render.ID))
	} else {
		render.StorageURL = storageURL
	}

	s.eventBus.Publish(ctx, util.EventRenderCompleted, *render)
	if err := s.notificationSvc.NotifyRenderReady(ctx, userID, *render); err != nil {
		logger.Warn("Failed to notify user of completed render", zap.Error(err))
	}

	return render, nil
}

// ValidateTextures filters paths down to those currently considered valid,
// preserving order.
func (s *RoomService) ValidateTextures(ctx context.Context, paths []string) []string {
	return s.textureValidator.ValidateBatch(paths)
}

// ResetTextureCache forgets every cached verdict; subsequent checks fall
// back to the optimistic heuristic.
func (s *RoomService) ResetTextureCache(ctx context.Context) {
	s.textureValidator.ClearCache()
	logger.Info("Texture validation cache cleared")
}
