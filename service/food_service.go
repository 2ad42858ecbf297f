// api/service/food_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/dao"
	food_errors "github.com/EivorRrz/restro/api/errors"
	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/model"
	"github.com/EivorRrz/restro/api/util"
)

//go:generate mockgen -source=food_service.go -destination=../test/service_mock/food_service_mock.go -package=mock_service
type IFoodService interface {
	CreateFood(ctx context.Context, food model.Food) (*model.Food, error)
	GetFood(ctx context.Context, foodID string) (*model.Food, error)
	ListFoods(ctx context.Context) ([]*model.Food, error)
	ListFoodsByCategory(ctx context.Context, categoryID string) ([]*model.Food, error)
	ListFoodsByRestaurant(ctx context.Context, restaurantID string) ([]*model.Food, error)
	SearchFoods(ctx context.Context, query string) ([]*model.Food, error)
	UpdateFood(ctx context.Context, food model.Food) (*model.Food, error)
	DeleteFood(ctx context.Context, foodID string) error
}

type FoodService struct {
	foodDAO        dao.IFoodDAO
	cacheService   *util.CacheService
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IFoodService = &FoodService{}

func NewFoodService(foodDAO dao.IFoodDAO, cacheService *util.CacheService, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *FoodService {
	return &FoodService{
		foodDAO:        foodDAO,
		cacheService:   cacheService,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

func (s *FoodService) CreateFood(ctx context.Context, food model.Food) (*model.Food, error) {
	if err := s.validationUtil.ValidateFood(food); err != nil {
		return nil, err
	}
	created, err := s.foodDAO.CreateFood(ctx, food)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, nil, created)
	s.publish(ctx, util.ChangeCreated, created.ID, nil, created)
	return created, nil
}

func (s *FoodService) GetFood(ctx context.Context, foodID string) (*model.Food, error) {
	return util.CacheAside(ctx, s.cacheService, util.FoodKey(foodID), func(ctx context.Context) (*model.Food, error) {
		return s.foodDAO.GetFood(ctx, foodID)
	})
}

func (s *FoodService) ListFoods(ctx context.Context) ([]*model.Food, error) {
	return util.CacheAside(ctx, s.cacheService, util.AllFoodsKey(), s.foodDAO.ListFoods)
}

func (s *FoodService) ListFoodsByCategory(ctx context.Context, categoryID string) ([]*model.Food, error) {
	return util.CacheAside(ctx, s.cacheService, util.FoodsByCategoryKey(categoryID), func(ctx context.Context) ([]*model.Food, error) {
		return s.foodDAO.ListFoodsByCategory(ctx, categoryID)
	})
}

func (s *FoodService) ListFoodsByRestaurant(ctx context.Context, restaurantID string) ([]*model.Food, error) {
	return util.CacheAside(ctx, s.cacheService, util.FoodsByRestaurantKey(restaurantID), func(ctx context.Context) ([]*model.Food, error) {
		return s.foodDAO.ListFoodsByRestaurant(ctx, restaurantID)
	})
}

func (s *FoodService) SearchFoods(ctx context.Context, query string) ([]*model.Food, error) {
	query = util.NormalizeQuery(query)
	if query == "" {
		return nil, food_errors.ErrInvalidSearchCriteria
	}
	return util.CacheAside(ctx, s.cacheService, util.FoodSearchKey(query), func(ctx context.Context) ([]*model.Food, error) {
		return s.foodDAO.SearchFoods(ctx, query)
	})
}

// UpdateFood invalidates the filtered lists of both the old and the new
// category and restaurant, so a food moved between them leaves neither stale.
func (s *FoodService) UpdateFood(ctx context.Context, food model.Food) (*model.Food, error) {
	if food.ID == "" {
		return nil, food_errors.ErrInvalidFoodData
	}
	if err := s.validationUtil.ValidateFood(food); err != nil {
		return nil, err
	}
	before, err := s.foodDAO.GetFood(ctx, food.ID)
	if err != nil {
		return nil, err
	}
	updated, err := s.foodDAO.UpdateFood(ctx, food)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, before, updated)
	s.publish(ctx, util.ChangeUpdated, updated.ID, before, updated)
	return updated, nil
}

func (s *FoodService) DeleteFood(ctx context.Context, foodID string) error {
	before, err := s.foodDAO.GetFood(ctx, foodID)
	if err != nil {
		return err
	}
	if err := s.foodDAO.DeleteFood(ctx, foodID); err != nil {
		return err
	}
	s.invalidate(ctx, before, nil)
	s.publish(ctx, util.ChangeDeleted, foodID, before, nil)
	return nil
}

func (s *FoodService) invalidate(ctx context.Context, before, after *model.Food) {
	s.cacheService.Invalidate(ctx, util.FoodInvalidationKeys(before, after)...)
	s.cacheService.InvalidateSearch(ctx, util.KindFood)
}

func (s *FoodService) publish(ctx context.Context, changeType, id string, before, after interface{}) {
	logger.Info("Food "+changeType, zap.String("foodID", id))
	s.eventBus.Publish(ctx, util.EventFoodChanged, util.EntityChange{
		Kind:       string(util.KindFood),
		ChangeType: changeType,
		EntityID:   id,
		ActorID:    actorID(ctx),
		Before:     before,
		After:      after,
	})
}
