// api/service/order_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/dao"
	food_errors "github.com/EivorRrz/restro/api/errors"
	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/model"
	"github.com/EivorRrz/restro/api/util"
)

//go:generate mockgen -source=order_service.go -destination=../test/service_mock/order_service_mock.go -package=mock_service

// IOrderService defines order operations. Orders are never cached.
type IOrderService interface {
	PlaceOrder(ctx context.Context, buyerID string, req model.PlaceOrderRequest) (*model.Order, error)
	GetOrder(ctx context.Context, orderID string, requester *model.User) (*model.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]*model.Order, error)
	ListUserOrders(ctx context.Context, buyerID string, limit, offset int) ([]*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID string, requester *model.User) (*model.Order, error)
}

type OrderService struct {
	orderDAO       dao.IOrderDAO
	foodService    IFoodService
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IOrderService = &OrderService{}

func NewOrderService(orderDAO dao.IOrderDAO, foodService IFoodService, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *OrderService {
	return &OrderService{
		orderDAO:       orderDAO,
		foodService:    foodService,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// PlaceOrder prices the cart from the catalog: each line costs the food's
// current price times its quantity.
func (s *OrderService) PlaceOrder(ctx context.Context, buyerID string, req model.PlaceOrderRequest) (*model.Order, error) {
	if err := s.validationUtil.ValidatePlaceOrder(req); err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(req.Cart))
	var total float64
	for _, line := range req.Cart {
		food, err := s.foodService.GetFood(ctx, line.Food)
		if errors.Is(err, food_errors.ErrFoodNotFound) {
			return nil, fmt.Errorf("%w: %s", food_errors.ErrFoodNotFound, line.Food)
		}
		if err != nil {
			return nil, err
		}
		if !food.IsAvailable {
			return nil, fmt.Errorf("%w: %s", food_errors.ErrFoodUnavailable, food.Title)
		}
		qty := line.Quantity
		if qty == 0 {
			qty = 1
		}
		items = append(items, model.OrderItem{Food: food.ID, Quantity: qty, Price: food.Price})
		total += food.Price * float64(qty)
	}

	payment := req.Payment
	if payment.Method == "" {
		payment.Method = "cash"
	}
	if payment.Status == "" {
		payment.Status = "pending"
	}

	order, err := s.orderDAO.CreateOrder(ctx, model.Order{
		Foods:       items,
		Payment:     payment,
		Buyer:       buyerID,
		Status:      model.OrderPending,
		TotalAmount: math.Round(total*100) / 100,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Order placed",
		zap.String("orderID", order.ID),
		zap.String("buyer", buyerID),
		zap.Float64("totalAmount", order.TotalAmount))
	s.eventBus.Publish(ctx, util.EventOrderPlaced, order)
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string, requester *model.User) (*model.Order, error) {
	order, err := s.orderDAO.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !canAccessOrder(order, requester) {
		return nil, food_errors.ErrForbidden
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, limit, offset int) ([]*model.Order, error) {
	return s.orderDAO.ListOrders(ctx, limit, offset)
}

func (s *OrderService) ListUserOrders(ctx context.Context, buyerID string, limit, offset int) ([]*model.Order, error) {
	return s.orderDAO.ListOrdersByBuyer(ctx, buyerID, limit, offset)
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	if err := s.validationUtil.ValidateOrderStatus(status); err != nil {
		return nil, err
	}
	order, err := s.orderDAO.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", food_errors.ErrIllegalOrderTransition, order.Status, status)
	}
	return s.setStatus(ctx, order, status)
}

// CancelOrder lets the buyer (or an admin) cancel while the kitchen has not
// started on the order.
func (s *OrderService) CancelOrder(ctx context.Context, orderID string, requester *model.User) (*model.Order, error) {
	order, err := s.orderDAO.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !canAccessOrder(order, requester) {
		return nil, food_errors.ErrForbidden
	}
	if !order.Status.Cancellable() {
		return nil, fmt.Errorf("%w: cannot cancel a %s order", food_errors.ErrIllegalOrderTransition, order.Status)
	}
	return s.setStatus(ctx, order, model.OrderCancelled)
}

func (s *OrderService) setStatus(ctx context.Context, order *model.Order, status model.OrderStatus) (*model.Order, error) {
	updated, err := s.orderDAO.UpdateOrderStatus(ctx, order.ID, status)
	if err != nil {
		return nil, err
	}
	logger.Info("Order status changed",
		zap.String("orderID", order.ID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(status)))
	s.eventBus.Publish(ctx, util.EventOrderStatusChange, updated)
	return updated, nil
}

func canAccessOrder(order *model.Order, requester *model.User) bool {
	if requester == nil {
		return false
	}
	return requester.IsAdmin() || order.Buyer == requester.ID
}
