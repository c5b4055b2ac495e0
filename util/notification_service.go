// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyOrderChange(ctx context.Context, changeType string, order model.Order) error {
	// In a real implementation, you might send this to a message queue or external notification service
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New order created",
			zap.String("orderID", order.ID),
			zap.String("userID", order.UserID))
	case "submitted":
		logger.Info("NOTIFICATION: Order submitted to print provider",
			zap.String("orderID", order.ID),
			zap.String("providerRef", order.ProviderRef))
	case "status_changed":
		logger.Info("NOTIFICATION: Order status changed",
			zap.String("orderID", order.ID),
			zap.String("status", order.Status))
	case "cancelled":
		logger.Info("NOTIFICATION: Order cancelled",
			zap.String("orderID", order.ID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}

	// Here you would implement the actual notification logic
	// This could involve sending messages to a queue, calling an external API, etc.

	return nil
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	// Mock email sending
	logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject))

	return nil
}

func (n *NotificationService) NotifyRenderReady(ctx context.Context, userID string, render model.RoomRender) error {
	logger.Info("Notifying user of completed room render",
		zap.String("userID", userID),
		zap.String("renderID", render.ID),
		zap.String("url", render.URL))
	return nil
}
