// api/service/services.go
package service

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/audit"
	"github.com/EivorRrz/restro/api/dao"
	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/metrics"
	"github.com/EivorRrz/restro/api/util"
)

type Services struct {
	Auth       IAuthService
	User       IUserService
	Restaurant IRestaurantService
	Category   ICategoryService
	Food       IFoodService
	Order      IOrderService
}

// Utilities groups the shared helpers every service draws from.
type Utilities struct {
	Cache        *util.CacheService
	Tokens       *util.TokenUtil
	Passwords    *util.PasswordUtil
	Validation   *util.ValidationUtil
	Notification *util.NotificationService
	EventBus     *util.EventBus
	Metrics      *metrics.Metrics
}

var notifiedEvents = []string{
	util.EventUserRegistered,
	util.EventUserDeleted,
	util.EventRestaurantChanged,
	util.EventCategoryChanged,
	util.EventFoodChanged,
	util.EventOrderPlaced,
	util.EventOrderStatusChange,
}

func InitializeServices(driver neo4j.DriverWithContext, auditService audit.Service, u Utilities) (*Services, error) {
	userDAO := dao.NewUserDAO(driver, auditService)
	restaurantDAO := dao.NewRestaurantDAO(driver, auditService)
	categoryDAO := dao.NewCategoryDAO(driver, auditService)
	foodDAO := dao.NewFoodDAO(driver, auditService)
	orderDAO := dao.NewOrderDAO(driver, auditService)

	return NewServices(userDAO, restaurantDAO, categoryDAO, foodDAO, orderDAO, auditService, u), nil
}

// NewServices wires services over the given DAOs and subscribes the
// notification and session-audit handlers to the event bus.
func NewServices(
	userDAO dao.IUserDAO,
	restaurantDAO dao.IRestaurantDAO,
	categoryDAO dao.ICategoryDAO,
	foodDAO dao.IFoodDAO,
	orderDAO dao.IOrderDAO,
	auditService audit.Service,
	u Utilities,
) *Services {
	foodService := NewFoodService(foodDAO, u.Cache, u.Validation, u.EventBus)

	services := &Services{
		Auth:       NewAuthService(userDAO, u.Cache, u.Tokens, u.Passwords, u.Validation, u.EventBus, u.Metrics),
		User:       NewUserService(userDAO, u.Cache, u.Passwords, u.Validation, u.EventBus),
		Restaurant: NewRestaurantService(restaurantDAO, u.Cache, u.Validation, u.EventBus),
		Category:   NewCategoryService(categoryDAO, u.Cache, u.Validation, u.EventBus),
		Food:       foodService,
		Order:      NewOrderService(orderDAO, foodService, u.Validation, u.EventBus),
	}

	for _, eventType := range notifiedEvents {
		u.EventBus.Subscribe(eventType, u.Notification.HandleEvent)
	}
	sessionAudit := sessionAuditHandler(auditService)
	u.EventBus.Subscribe(util.EventUserLoggedIn, sessionAudit)
	u.EventBus.Subscribe(util.EventUserLoggedOut, sessionAudit)

	return services
}

// sessionAuditHandler records logins and logouts, which have no DAO write of
// their own to hang an audit log on.
func sessionAuditHandler(auditService audit.Service) util.EventHandler {
	return func(ctx context.Context, event util.Event) error {
		change, ok := event.Payload.(util.EntityChange)
		if !ok {
			return nil
		}
		action := "LOGIN"
		if event.Type == util.EventUserLoggedOut {
			action = "LOGOUT"
		}
		logger.Debug("Recording session event", zap.String("action", action), zap.String("userID", change.EntityID))
		auditService.Record(ctx, audit.AuditLog{
			UserID:       change.EntityID,
			Action:       action,
			ResourceType: "session",
			ResourceID:   change.EntityID,
			Success:      true,
		})
		return nil
	}
}

func actorID(ctx context.Context) string {
	return audit.ActorFromContext(ctx)
}
