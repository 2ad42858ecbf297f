// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/model"
)

// NotificationService delivers user-facing notifications. Delivery is a log
// line for now.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyEntityChange(ctx context.Context, change EntityChange) error {
	switch change.ChangeType {
	case ChangeCreated, ChangeUpdated, ChangeDeleted:
	default:
		return fmt.Errorf("unknown change type: %s", change.ChangeType)
	}
	logger.Info("NOTIFICATION: catalog changed",
		zap.String("kind", change.Kind),
		zap.String("changeType", change.ChangeType),
		zap.String("entityID", change.EntityID),
		zap.String("actorID", change.ActorID))
	return nil
}

func (n *NotificationService) NotifyOrderPlaced(ctx context.Context, order model.Order) error {
	logger.Info("NOTIFICATION: order placed",
		zap.String("orderID", order.ID),
		zap.String("buyer", order.Buyer),
		zap.Float64("totalAmount", order.TotalAmount))
	return nil
}

func (n *NotificationService) NotifyOrderStatus(ctx context.Context, order model.Order) error {
	logger.Info("NOTIFICATION: order status changed",
		zap.String("orderID", order.ID),
		zap.String("buyer", order.Buyer),
		zap.String("status", string(order.Status)))
	return nil
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject))
	return nil
}

// HandleEvent is an EventHandler routing bus events to the notifiers above.
func (n *NotificationService) HandleEvent(ctx context.Context, event Event) error {
	switch p := event.Payload.(type) {
	case EntityChange:
		if event.Type == EventUserRegistered {
			if u, ok := p.After.(*model.User); ok && u != nil {
				return n.SendEmail(ctx, u.Email, "Welcome", "Your account is ready.")
			}
		}
		return n.NotifyEntityChange(ctx, p)
	case *model.Order:
		if event.Type == EventOrderPlaced {
			return n.NotifyOrderPlaced(ctx, *p)
		}
		return n.NotifyOrderStatus(ctx, *p)
	default:
		return fmt.Errorf("unexpected payload %T for event %s", event.Payload, event.Type)
	}
}
