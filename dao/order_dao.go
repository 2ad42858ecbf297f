// api/dao/order_dao.go
package dao

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/audit"
	food_errors "github.com/EivorRrz/restro/api/errors"
	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/model"
)

type IOrderDAO interface {
	CreateOrder(ctx context.Context, order model.Order) (*model.Order, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]*model.Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error)
}

type OrderDAO struct {
	Driver       neo4j.DriverWithContext
	AuditService audit.Service
}

var _ IOrderDAO = &OrderDAO{}

func NewOrderDAO(driver neo4j.DriverWithContext, auditService audit.Service) *OrderDAO {
	return &OrderDAO{Driver: driver, AuditService: auditService}
}

// CreateOrder stores the order and links it to its buyer.
func (dao *OrderDAO) CreateOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	foods, err := json.Marshal(order.Foods)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", food_errors.ErrInvalidOrderData, err)
	}
	payment, err := json.Marshal(order.Payment)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", food_errors.ErrInvalidOrderData, err)
	}
	ts := now()

	query := `
	CREATE (o:Order {id: $id})
	SET o += $props
	WITH o
	OPTIONAL MATCH (u:User {id: $buyer})
	FOREACH (_ IN CASE WHEN u IS NULL THEN [] ELSE [1] END | MERGE (o)-[:PLACED_BY]->(u))
	RETURN o
	`
	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeWrite, query, map[string]any{
		"id":    order.ID,
		"buyer": order.Buyer,
		"props": map[string]any{
			"foods":       string(foods),
			"payment":     string(payment),
			"buyer":       order.Buyer,
			"status":      string(order.Status),
			"totalAmount": order.TotalAmount,
			"createdAt":   ts,
			"updatedAt":   ts,
		},
	})
	if err != nil {
		logger.Error("Failed to create order", zap.Error(err), zap.String("buyer", order.Buyer))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrInternalServer
	}

	created := mapNodeToOrder(*node)
	logger.Info("Order created successfully", zap.String("orderID", created.ID), zap.String("buyer", created.Buyer))
	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:        audit.ActorFromContext(ctx),
		Action:        "CREATE_ORDER",
		ResourceType:  "order",
		ResourceID:    created.ID,
		Success:       true,
		ChangeDetails: audit.ChangeDetails(nil, created),
	})
	return created, nil
}

func (dao *OrderDAO) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeRead,
		`MATCH (o:Order {id: $id}) RETURN o`, map[string]any{"id": orderID})
	if err != nil {
		logger.Error("Failed to get order", zap.Error(err), zap.String("orderID", orderID))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrOrderNotFound
	}
	return mapNodeToOrder(*node), nil
}

func (dao *OrderDAO) ListOrders(ctx context.Context, limit, offset int) ([]*model.Order, error) {
	return dao.list(ctx, `
	MATCH (o:Order)
	RETURN o ORDER BY o.createdAt DESC
	SKIP $offset LIMIT $limit
	`, map[string]any{"limit": limit, "offset": offset})
}

func (dao *OrderDAO) ListOrdersByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*model.Order, error) {
	return dao.list(ctx, `
	MATCH (o:Order {buyer: $buyer})
	RETURN o ORDER BY o.createdAt DESC
	SKIP $offset LIMIT $limit
	`, map[string]any{"buyer": buyerID, "limit": limit, "offset": offset})
}

func (dao *OrderDAO) list(ctx context.Context, query string, params map[string]any) ([]*model.Order, error) {
	nodes, err := runList(ctx, dao.Driver, query, params)
	if err != nil {
		logger.Error("Failed to list orders", zap.Error(err))
		return nil, err
	}
	orders := make([]*model.Order, 0, len(nodes))
	for _, n := range nodes {
		orders = append(orders, mapNodeToOrder(n))
	}
	return orders, nil
}

func (dao *OrderDAO) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	oldOrder, err := dao.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeWrite, `
	MATCH (o:Order {id: $id})
	SET o.status = $status, o.updatedAt = $updatedAt
	RETURN o
	`, map[string]any{"id": orderID, "status": string(status), "updatedAt": now()})
	if err != nil {
		logger.Error("Failed to update order status", zap.Error(err), zap.String("orderID", orderID))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrOrderNotFound
	}

	updated := mapNodeToOrder(*node)
	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:       audit.ActorFromContext(ctx),
		Action:       "UPDATE_ORDER_STATUS",
		ResourceType: "order",
		ResourceID:   orderID,
		Success:      true,
		ChangeDetails: audit.ChangeDetails(
			map[string]string{"status": string(oldOrder.Status)},
			map[string]string{"status": string(updated.Status)},
		),
	})
	return updated, nil
}

func mapNodeToOrder(node neo4j.Node) *model.Order {
	props := node.Props
	o := &model.Order{
		ID:          propString(props, "id"),
		Foods:       []model.OrderItem{},
		Buyer:       propString(props, "buyer"),
		Status:      model.OrderStatus(propString(props, "status")),
		TotalAmount: propFloat(props, "totalAmount"),
		CreatedAt:   propTime(props, "createdAt"),
		UpdatedAt:   propTime(props, "updatedAt"),
	}
	if raw := propString(props, "foods"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &o.Foods); err != nil {
			logger.Warn("Failed to decode order items", zap.Error(err), zap.String("orderID", o.ID))
		}
	}
	if raw := propString(props, "payment"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &o.Payment); err != nil {
			logger.Warn("Failed to decode order payment", zap.Error(err), zap.String("orderID", o.ID))
		}
	}
	return o
}
