// api/service/quote_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/muralehq/murale/api/audit"
	"github.com/muralehq/murale/api/client"
	murale_errors "github.com/muralehq/murale/api/errors"
	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
	"github.com/muralehq/murale/api/util"
)

// IQuoteService defines the interface for pricing quote operations
type IQuoteService interface {
	GetQuote(ctx context.Context, req model.QuoteRequest) (*model.Quote, error)
	InvalidateQuote(ctx context.Context, req model.QuoteRequest) error
}

// QuoteService prices SKUs through the print-fulfillment provider, caching
// results under the deterministic quote key so repeated requests with
// semantically equal attributes hit the cache regardless of how a call site
// spelled them.
type QuoteService struct {
	printClient    *client.PrintClient
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
	auditService   audit.Service
	eventBus       *util.EventBus
}

var _ IQuoteService = &QuoteService{}

// NewQuoteService creates a new instance of QuoteService
func NewQuoteService(printClient *client.PrintClient, validationUtil *util.ValidationUtil, cacheService *util.CacheService, auditService audit.Service, eventBus *util.EventBus) *QuoteService {
	return &QuoteService{
		printClient:    printClient,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		auditService:   auditService,
		eventBus:       eventBus,
	}
}

func (s *QuoteService) GetQuote(ctx context.Context, req model.QuoteRequest) (*model.Quote, error) {
	if err := s.validationUtil.ValidateQuoteRequest(req); err != nil {
		logger.Warn("Invalid quote request", zap.Error(err), zap.String("sku", req.SKU))
		return nil, murale_errors.ErrInvalidQuoteRequest
	}

	quoteKey := util.QuoteKey(req.SKU, req.Attributes)

	cached, err := s.cacheService.GetQuote(ctx, quoteKey)
	if err != nil {
		// Cache trouble is not fatal for quoting; fall through to the provider.
		logger.Warn("Quote cache lookup failed", zap.Error(err), zap.String("quoteKey", quoteKey))
	}
	if cached != nil && (cached.ExpiresAt.IsZero() || time.Now().Before(cached.ExpiresAt)) {
		logger.Debug("Quote served from cache", zap.String("quoteKey", quoteKey))
		cached.FromCache = true
		return cached, nil
	}

	normalized := util.NormalizeAttributes(req.Attributes)
	quote, err := s.printClient.GetQuote(ctx, req.SKU, normalized, req.DestinationCountry, req.Copies)
	if err != nil {
		logger.Error("Print provider quote failed",
			zap.Error(err),
			zap.String("sku", req.SKU))
		return nil, murale_errors.ErrQuoteProvider
	}
	quote.ExpiresAt = quote.IssuedAt.Add(15 * time.Minute)

	if err := s.cacheService.SetQuote(ctx, quoteKey, *quote); err != nil {
		logger.Warn("Failed to cache quote", zap.Error(err), zap.String("quoteKey", quoteKey))
	}

	s.eventBus.Publish(ctx, util.EventQuoteCreated, *quote)

	userID, _ := ctx.Value("requestingUserID").(string)
	details, _ := json.Marshal(map[string]interface{}{
		"quote_key": quoteKey,
		"total":     quote.TotalCost,
		"currency":  quote.Currency,
	})
	if err := s.auditService.LogAction(ctx, audit.AuditLog{
		Timestamp:     time.Now(),
		UserID:        userID,
		Action:        audit.ActionQuoteIssued,
		EntityType:    "quote",
		EntityID:      quoteKey,
		ChangeDetails: details,
	}); err != nil {
		logger.Warn("Failed to record quote audit log", zap.Error(err))
	}

	return quote, nil
}

// InvalidateQuote drops the cached quote for a request, forcing the next
// lookup back to the provider.
func (s *QuoteService) InvalidateQuote(ctx context.Context, req model.QuoteRequest) error {
	quoteKey := util.QuoteKey(req.SKU, req.Attributes)
	if err := s.cacheService.DeleteQuote(ctx, quoteKey); err != nil {
		logger.Error("Failed to invalidate cached quote",
			zap.Error(err),
			zap.String("quoteKey", quoteKey))
		return murale_errors.ErrCacheOperation
	}
	return nil
}
