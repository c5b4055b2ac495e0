// api/service/order_service.go
package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muralehq/murale/api/audit"
	"github.com/muralehq/murale/api/client"
	"github.com/muralehq/murale/api/db"
	murale_errors "github.com/muralehq/murale/api/errors"
	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
	"github.com/muralehq/murale/api/util"
)

// IOrderService defines the interface for order operations
type IOrderService interface {
	CreateOrder(ctx context.Context, order model.Order, userID string) (*model.Order, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	RefreshOrderStatus(ctx context.Context, orderID string) (*model.OrderStatusUpdate, error)
}

// OrderService handles order creation and submission to the print provider.
// Every order is re-priced through the quote path before submission so a
// stale client-side total cannot be honored.
type OrderService struct {
	printClient     *client.PrintClient
	quoteService    IQuoteService
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	auditService    audit.Service
	eventBus        *util.EventBus
}

var _ IOrderService = &OrderService{}

// NewOrderService creates a new instance of OrderService
func NewOrderService(printClient *client.PrintClient, quoteService IQuoteService, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, auditService audit.Service, eventBus *util.EventBus) *OrderService {
	service := &OrderService{
		printClient:     printClient,
		quoteService:    quoteService,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		auditService:    auditService,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe(util.EventOrderCreated, service.handleOrderCreated)
	eventBus.Subscribe(util.EventOrderStatusChanged, service.handleOrderStatusChanged)

	return service
}

func (s *OrderService) handleOrderCreated(ctx context.Context, event util.Event) error {
	order, ok := event.Payload.(model.Order)
	if !ok {
		logger.Error("Invalid event payload type", zap.Any("payload", event.Payload))
		return nil
	}
	logger.Info("Order created event received", zap.String("orderID", order.ID))

	if err := s.notificationSvc.NotifyOrderChange(ctx, "created", order); err != nil {
		logger.Warn("Failed to send order creation notification", zap.Error(err), zap.String("orderID", order.ID))
	}
	return nil
}

func (s *OrderService) handleOrderStatusChanged(ctx context.Context, event util.Event) error {
	order, ok := event.Payload.(model.Order)
	if !ok {
		logger.Error("Invalid event payload type", zap.Any("payload", event.Payload))
		return nil
	}
	logger.Info("Order status changed event received",
		zap.String("orderID", order.ID),
		zap.String("status", order.Status))

	if err := s.notificationSvc.NotifyOrderChange(ctx, "status_changed", order); err != nil {
		logger.Warn("Failed to send order status notification", zap.Error(err), zap.String("orderID", order.ID))
	}
	return nil
}

func (s *OrderService) CreateOrder(ctx context.Context, order model.Order, userID string) (*model.Order, error) {
	if err := s.validationUtil.ValidateOrder(order); err != nil {
		logger.Warn("Invalid order data", zap.Error(err))
		return nil, murale_errors.ErrInvalidOrderData
	}

	order.ID = uuid.New().String()
	order.UserID = userID
	order.Status = model.OrderStatusCreated
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	// Re-price each item through the quote path; the client-supplied total
	// is advisory only.
	var repriced float64
	itemAttributes := make([]map[string]string, len(order.Items))
	for i, item := range order.Items {
		quote, err := s.quoteService.GetQuote(ctx, model.QuoteRequest{
			SKU:                item.SKU,
			Attributes:         item.Attributes,
			DestinationCountry: order.Recipient.CountryCode,
			Copies:             item.Copies,
		})
		if err != nil {
			logger.Error("Failed to re-price order item",
				zap.Error(err),
				zap.String("sku", item.SKU))
			return nil, err
		}
		order.Items[i].UnitCost = quote.ItemCost
		itemAttributes[i] = util.NormalizeAttributes(item.Attributes)
		repriced += quote.TotalCost
		if order.Currency == "" {
			order.Currency = quote.Currency
		}
	}

	if order.TotalCost > 0 && math.Abs(order.TotalCost-repriced) > 0.01 {
		logger.Warn("Order total drifted from current quote",
			zap.Float64("claimed", order.TotalCost),
			zap.Float64("repriced", repriced))
		return nil, murale_errors.ErrPriceDrift
	}
	order.TotalCost = repriced

	// Guard against concurrent double submission of the same order.
	locked, err := db.LockOrderSubmission(ctx, order.ID, 30*time.Second)
	if err != nil {
		logger.Error("Failed to acquire order submission lock", zap.Error(err), zap.String("orderID", order.ID))
		return nil, murale_errors.ErrInternalServer
	}
	if !locked {
		return nil, murale_errors.ErrOrderConflict
	}
	defer func() {
		if err := db.UnlockOrderSubmission(ctx, order.ID); err != nil {
			logger.Warn("Failed to release order submission lock", zap.Error(err), zap.String("orderID", order.ID))
		}
	}()

	providerRef, err := s.printClient.SubmitOrder(ctx, order, itemAttributes)
	if err != nil {
		logger.Error("Failed to submit order to print provider",
			zap.Error(err),
			zap.String("orderID", order.ID))
		return nil, murale_errors.ErrOrderProvider
	}

	order.ProviderRef = providerRef
	order.Status = model.OrderStatusSubmitted
	now := time.Now()
	order.SubmittedAt = &now
	order.UpdatedAt = now

	if err := s.cacheService.SetOrder(ctx, order); err != nil {
		logger.Warn("Failed to cache order", zap.Error(err), zap.String("orderID", order.ID))
	}

	s.eventBus.Publish(ctx, util.EventOrderCreated, order)
	s.recordOrderAudit(ctx, audit.ActionOrderSubmitted, order)

	return &order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.cacheService.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("Failed to read cached order", zap.Error(err), zap.String("orderID", orderID))
		return nil, murale_errors.ErrInternalServer
	}
	if order == nil {
		return nil, murale_errors.ErrOrderNotFound
	}
	return order, nil
}

// RefreshOrderStatus pulls the provider's current fulfillment stage and
// updates the cached order when it changed.
func (s *OrderService) RefreshOrderStatus(ctx context.Context, orderID string) (*model.OrderStatusUpdate, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	update, err := s.printClient.GetOrderStatus(ctx, order.ProviderRef)
	if err != nil {
		logger.Error("Failed to fetch order status from print provider",
			zap.Error(err),
			zap.String("orderID", orderID))
		return nil, murale_errors.ErrOrderProvider
	}
	update.OrderID = orderID

	if update.Status != order.Status {
		order.Status = update.Status
		order.TrackingURL = update.TrackingURL
		order.UpdatedAt = time.Now()

		if err := s.cacheService.SetOrder(ctx, *order); err != nil {
			logger.Warn("Failed to refresh cached order", zap.Error(err), zap.String("orderID", orderID))
		}

		s.eventBus.Publish(ctx, util.EventOrderStatusChanged, *order)
		s.recordOrderAudit(ctx, audit.ActionOrderStatusChanged, *order)
	}

	return update, nil
}

func (s *OrderService) recordOrderAudit(ctx context.Context, action string, order model.Order) {
	details, _ := json.Marshal(map[string]interface{}{
		"status":       order.Status,
		"provider_ref": order.ProviderRef,
		"total":        order.TotalCost,
	})
	if err := s.auditService.LogAction(ctx, audit.AuditLog{
		Timestamp:     time.Now(),
		UserID:        order.UserID,
		Action:        action,
		EntityType:    "order",
		EntityID:      order.ID,
		ChangeDetails: details,
	}); err != nil {
		logger.Warn("Failed to record order audit log", zap.Error(err), zap.String("orderID", order.ID))
	}
}
