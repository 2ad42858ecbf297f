// api/dao/restaurant_dao.go
package dao

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/audit"
	food_errors "github.com/EivorRrz/restro/api/errors"
	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/model"
)

type IRestaurantDAO interface {
	CreateRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID string) (*model.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]*model.Restaurant, error)
	SearchRestaurants(ctx context.Context, query string) ([]*model.Restaurant, error)
	UpdateRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error)
	DeleteRestaurant(ctx context.Context, restaurantID string) error
}

type RestaurantDAO struct {
	Driver       neo4j.DriverWithContext
	AuditService audit.Service
}

var _ IRestaurantDAO = &RestaurantDAO{}

func NewRestaurantDAO(driver neo4j.DriverWithContext, auditService audit.Service) *RestaurantDAO {
	return &RestaurantDAO{Driver: driver, AuditService: auditService}
}

func restaurantProps(r model.Restaurant) map[string]any {
	coords, _ := json.Marshal(r.Coords)
	return map[string]any{
		"title":       r.Title,
		"imageUrl":    r.ImageURL,
		"foods":       nonNilStrings(r.Foods),
		"time":        r.Time,
		"pickup":      r.Pickup,
		"delivery":    r.Delivery,
		"isOpen":      r.IsOpen,
		"logoUrl":     r.LogoURL,
		"rating":      r.Rating,
		"ratingCount": r.RatingCount,
		"code":        r.Code,
		"coords":      string(coords),
	}
}

func (dao *RestaurantDAO) CreateRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error) {
	start := time.Now()
	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	props := restaurantProps(restaurant)
	props["createdAt"] = now()
	props["updatedAt"] = props["createdAt"]

	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeWrite,
		`CREATE (r:Restaurant {id: $id}) SET r += $props RETURN r`,
		map[string]any{"id": restaurant.ID, "props": props})
	if err != nil {
		logger.Error("Failed to create restaurant", zap.Error(err), zap.String("title", restaurant.Title))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrInternalServer
	}

	created := mapNodeToRestaurant(*node)
	logger.Info("Restaurant created successfully",
		zap.String("restaurantID", created.ID),
		zap.Duration("duration", time.Since(start)))
	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:        audit.ActorFromContext(ctx),
		Action:        "CREATE_RESTAURANT",
		ResourceType:  "restaurant",
		ResourceID:    created.ID,
		Success:       true,
		ChangeDetails: audit.ChangeDetails(nil, created),
	})
	return created, nil
}

func (dao *RestaurantDAO) GetRestaurant(ctx context.Context, restaurantID string) (*model.Restaurant, error) {
	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeRead,
		`MATCH (r:Restaurant {id: $id}) RETURN r`, map[string]any{"id": restaurantID})
	if err != nil {
		logger.Error("Failed to get restaurant", zap.Error(err), zap.String("restaurantID", restaurantID))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrRestaurantNotFound
	}
	return mapNodeToRestaurant(*node), nil
}

func (dao *RestaurantDAO) ListRestaurants(ctx context.Context) ([]*model.Restaurant, error) {
	return dao.list(ctx, `MATCH (r:Restaurant) RETURN r ORDER BY r.createdAt DESC`, nil)
}

// SearchRestaurants matches query case-insensitively against the title.
func (dao *RestaurantDAO) SearchRestaurants(ctx context.Context, query string) ([]*model.Restaurant, error) {
	return dao.list(ctx, `
	MATCH (r:Restaurant)
	WHERE toLower(r.title) CONTAINS toLower($query)
	RETURN r ORDER BY r.rating DESC, r.title
	`, map[string]any{"query": query})
}

func (dao *RestaurantDAO) list(ctx context.Context, query string, params map[string]any) ([]*model.Restaurant, error) {
	nodes, err := runList(ctx, dao.Driver, query, params)
	if err != nil {
		logger.Error("Failed to list restaurants", zap.Error(err))
		return nil, err
	}
	restaurants := make([]*model.Restaurant, 0, len(nodes))
	for _, n := range nodes {
		restaurants = append(restaurants, mapNodeToRestaurant(n))
	}
	return restaurants, nil
}

func (dao *RestaurantDAO) UpdateRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error) {
	oldRestaurant, err := dao.GetRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}

	props := restaurantProps(restaurant)
	props["updatedAt"] = now()
	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeWrite,
		`MATCH (r:Restaurant {id: $id}) SET r += $props RETURN r`,
		map[string]any{"id": restaurant.ID, "props": props})
	if err != nil {
		logger.Error("Failed to update restaurant", zap.Error(err), zap.String("restaurantID", restaurant.ID))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrRestaurantNotFound
	}

	updated := mapNodeToRestaurant(*node)
	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:        audit.ActorFromContext(ctx),
		Action:        "UPDATE_RESTAURANT",
		ResourceType:  "restaurant",
		ResourceID:    restaurant.ID,
		Success:       true,
		ChangeDetails: audit.ChangeDetails(oldRestaurant, updated),
	})
	return updated, nil
}

func (dao *RestaurantDAO) DeleteRestaurant(ctx context.Context, restaurantID string) error {
	deleted, err := runDelete(ctx, dao.Driver, `MATCH (r:Restaurant {id: $id}) DETACH DELETE r`, map[string]any{"id": restaurantID})
	if err != nil {
		logger.Error("Failed to delete restaurant", zap.Error(err), zap.String("restaurantID", restaurantID))
		return err
	}
	if deleted == 0 {
		return food_errors.ErrRestaurantNotFound
	}

	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:       audit.ActorFromContext(ctx),
		Action:       "DELETE_RESTAURANT",
		ResourceType: "restaurant",
		ResourceID:   restaurantID,
		Success:      true,
	})
	return nil
}

func mapNodeToRestaurant(node neo4j.Node) *model.Restaurant {
	props := node.Props
	r := &model.Restaurant{
		ID:          propString(props, "id"),
		Title:       propString(props, "title"),
		ImageURL:    propString(props, "imageUrl"),
		Foods:       propStrings(props, "foods"),
		Time:        propString(props, "time"),
		Pickup:      propBool(props, "pickup"),
		Delivery:    propBool(props, "delivery"),
		IsOpen:      propBool(props, "isOpen"),
		LogoURL:     propString(props, "logoUrl"),
		Rating:      propFloat(props, "rating"),
		RatingCount: propInt(props, "ratingCount"),
		Code:        propString(props, "code"),
		CreatedAt:   propTime(props, "createdAt"),
		UpdatedAt:   propTime(props, "updatedAt"),
	}
	if raw := propString(props, "coords"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &r.Coords); err != nil {
			logger.Warn("Failed to decode restaurant coords", zap.Error(err), zap.String("restaurantID", r.ID))
		}
	}
	return r
}
