// api/dao/food_dao.go
package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/audit"
	food_errors "github.com/EivorRrz/restro/api/errors"
	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/model"
)

type IFoodDAO interface {
	CreateFood(ctx context.Context, food model.Food) (*model.Food, error)
	GetFood(ctx context.Context, foodID string) (*model.Food, error)
	ListFoods(ctx context.Context) ([]*model.Food, error)
	ListFoodsByCategory(ctx context.Context, categoryID string) ([]*model.Food, error)
	ListFoodsByRestaurant(ctx context.Context, restaurantID string) ([]*model.Food, error)
	SearchFoods(ctx context.Context, query string) ([]*model.Food, error)
	UpdateFood(ctx context.Context, food model.Food) (*model.Food, error)
	DeleteFood(ctx context.Context, foodID string) error
}

type FoodDAO struct {
	Driver       neo4j.DriverWithContext
	AuditService audit.Service
}

var _ IFoodDAO = &FoodDAO{}

func NewFoodDAO(driver neo4j.DriverWithContext, auditService audit.Service) *FoodDAO {
	return &FoodDAO{Driver: driver, AuditService: auditService}
}

func foodProps(f model.Food) map[string]any {
	return map[string]any{
		"title":       f.Title,
		"description": f.Description,
		"price":       f.Price,
		"imageUrl":    f.ImageURL,
		"foodTags":    f.FoodTags,
		"category":    f.Category,
		"code":        f.Code,
		"isAvailable": f.IsAvailable,
		"restaurant":  f.Restaurant,
		"rating":      f.Rating,
		"ratingCount": f.RatingCount,
	}
}

func (dao *FoodDAO) CreateFood(ctx context.Context, food model.Food) (*model.Food, error) {
	start := time.Now()
	if food.ID == "" {
		food.ID = uuid.New().String()
	}
	props := foodProps(food)
	props["createdAt"] = now()
	props["updatedAt"] = props["createdAt"]

	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeWrite,
		`CREATE (f:Food {id: $id}) SET f += $props RETURN f`,
		map[string]any{"id": food.ID, "props": props})
	if err != nil {
		logger.Error("Failed to create food", zap.Error(err), zap.String("title", food.Title))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrInternalServer
	}

	created := mapNodeToFood(*node)
	logger.Info("Food created successfully", zap.String("foodID", created.ID), zap.Duration("duration", time.Since(start)))
	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:        audit.ActorFromContext(ctx),
		Action:        "CREATE_FOOD",
		ResourceType:  "food",
		ResourceID:    created.ID,
		Success:       true,
		ChangeDetails: audit.ChangeDetails(nil, created),
	})
	return created, nil
}

func (dao *FoodDAO) GetFood(ctx context.Context, foodID string) (*model.Food, error) {
	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeRead,
		`MATCH (f:Food {id: $id}) RETURN f`, map[string]any{"id": foodID})
	if err != nil {
		logger.Error("Failed to get food", zap.Error(err), zap.String("foodID", foodID))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrFoodNotFound
	}
	return mapNodeToFood(*node), nil
}

func (dao *FoodDAO) ListFoods(ctx context.Context) ([]*model.Food, error) {
	return dao.list(ctx, `MATCH (f:Food) RETURN f ORDER BY f.createdAt DESC`, nil)
}

func (dao *FoodDAO) ListFoodsByCategory(ctx context.Context, categoryID string) ([]*model.Food, error) {
	return dao.list(ctx, `MATCH (f:Food {category: $category}) RETURN f ORDER BY f.title`,
		map[string]any{"category": categoryID})
}

func (dao *FoodDAO) ListFoodsByRestaurant(ctx context.Context, restaurantID string) ([]*model.Food, error) {
	return dao.list(ctx, `MATCH (f:Food {restaurant: $restaurant}) RETURN f ORDER BY f.title`,
		map[string]any{"restaurant": restaurantID})
}

// SearchFoods matches query case-insensitively against title, description and tags.
func (dao *FoodDAO) SearchFoods(ctx context.Context, query string) ([]*model.Food, error) {
	return dao.list(ctx, `
	MATCH (f:Food)
	WHERE toLower(f.title) CONTAINS toLower($query)
	   OR toLower(f.description) CONTAINS toLower($query)
	   OR toLower(f.foodTags) CONTAINS toLower($query)
	RETURN f ORDER BY f.rating DESC, f.title
	`, map[string]any{"query": query})
}

func (dao *FoodDAO) list(ctx context.Context, query string, params map[string]any) ([]*model.Food, error) {
	nodes, err := runList(ctx, dao.Driver, query, params)
	if err != nil {
		logger.Error("Failed to list foods", zap.Error(err))
		return nil, err
	}
	foods := make([]*model.Food, 0, len(nodes))
	for _, n := range nodes {
		foods = append(foods, mapNodeToFood(n))
	}
	return foods, nil
}

func (dao *FoodDAO) UpdateFood(ctx context.Context, food model.Food) (*model.Food, error) {
	oldFood, err := dao.GetFood(ctx, food.ID)
	if err != nil {
		return nil, err
	}

	props := foodProps(food)
	props["updatedAt"] = now()
	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeWrite,
		`MATCH (f:Food {id: $id}) SET f += $props RETURN f`,
		map[string]any{"id": food.ID, "props": props})
	if err != nil {
		logger.Error("Failed to update food", zap.Error(err), zap.String("foodID", food.ID))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrFoodNotFound
	}

	updated := mapNodeToFood(*node)
	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:        audit.ActorFromContext(ctx),
		Action:        "UPDATE_FOOD",
		ResourceType:  "food",
		ResourceID:    food.ID,
		Success:       true,
		ChangeDetails: audit.ChangeDetails(oldFood, updated),
	})
	return updated, nil
}

func (dao *FoodDAO) DeleteFood(ctx context.Context, foodID string) error {
	deleted, err := runDelete(ctx, dao.Driver, `MATCH (f:Food {id: $id}) DETACH DELETE f`, map[string]any{"id": foodID})
	if err != nil {
		logger.Error("Failed to delete food", zap.Error(err), zap.String("foodID", foodID))
		return err
	}
	if deleted == 0 {
		return food_errors.ErrFoodNotFound
	}

	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:       audit.ActorFromContext(ctx),
		Action:       "DELETE_FOOD",
		ResourceType: "food",
		ResourceID:   foodID,
		Success:      true,
	})
	return nil
}

func mapNodeToFood(node neo4j.Node) *model.Food {
	props := node.Props
	return &model.Food{
		ID:          propString(props, "id"),
		Title:       propString(props, "title"),
		Description: propString(props, "description"),
		Price:       propFloat(props, "price"),
		ImageURL:    propString(props, "imageUrl"),
		FoodTags:    propString(props, "foodTags"),
		Category:    propString(props, "category"),
		Code:        propString(props, "code"),
		IsAvailable: propBool(props, "isAvailable"),
		Restaurant:  propString(props, "restaurant"),
		Rating:      propFloat(props, "rating"),
		RatingCount: propInt(props, "ratingCount"),
		CreatedAt:   propTime(props, "createdAt"),
		UpdatedAt:   propTime(props, "updatedAt"),
	}
}
