// api/service/restaurant_service.go
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/dao"
	food_errors "github.com/EivorRrz/restro/api/errors"
	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/model"
	"github.com/EivorRrz/restro/api/util"
)

//go:generate mockgen -source=restaurant_service.go -destination=../test/service_mock/restaurant_service_mock.go -package=mock_service
type IRestaurantService interface {
	CreateRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID string) (*model.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]*model.Restaurant, error)
	SearchRestaurants(ctx context.Context, query string) ([]*model.Restaurant, error)
	UpdateRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error)
	DeleteRestaurant(ctx context.Context, restaurantID string) error
}

type RestaurantService struct {
	restaurantDAO  dao.IRestaurantDAO
	cacheService   *util.CacheService
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IRestaurantService = &RestaurantService{}

func NewRestaurantService(restaurantDAO dao.IRestaurantDAO, cacheService *util.CacheService, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *RestaurantService {
	return &RestaurantService{
		restaurantDAO:  restaurantDAO,
		cacheService:   cacheService,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

func (s *RestaurantService) CreateRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error) {
	if err := s.validationUtil.ValidateRestaurant(restaurant); err != nil {
		return nil, err
	}
	created, err := s.restaurantDAO.CreateRestaurant(ctx, restaurant)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, created.ID)
	s.publish(ctx, util.ChangeCreated, created.ID, nil, created)
	return created, nil
}

func (s *RestaurantService) GetRestaurant(ctx context.Context, restaurantID string) (*model.Restaurant, error) {
	return util.CacheAside(ctx, s.cacheService, util.RestaurantKey(restaurantID), func(ctx context.Context) (*model.Restaurant, error) {
		return s.restaurantDAO.GetRestaurant(ctx, restaurantID)
	})
}

func (s *RestaurantService) ListRestaurants(ctx context.Context) ([]*model.Restaurant, error) {
	return util.CacheAside(ctx, s.cacheService, util.AllRestaurantsKey(), s.restaurantDAO.ListRestaurants)
}

func (s *RestaurantService) SearchRestaurants(ctx context.Context, query string) ([]*model.Restaurant, error) {
	query = util.NormalizeQuery(query)
	if query == "" {
		return nil, food_errors.ErrInvalidSearchCriteria
	}
	return util.CacheAside(ctx, s.cacheService, util.RestaurantSearchKey(query), func(ctx context.Context) ([]*model.Restaurant, error) {
		return s.restaurantDAO.SearchRestaurants(ctx, query)
	})
}

func (s *RestaurantService) UpdateRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error) {
	if strings.TrimSpace(restaurant.ID) == "" {
		return nil, food_errors.ErrInvalidRestaurantData
	}
	if err := s.validationUtil.ValidateRestaurant(restaurant); err != nil {
		return nil, err
	}
	updated, err := s.restaurantDAO.UpdateRestaurant(ctx, restaurant)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, updated.ID)
	s.publish(ctx, util.ChangeUpdated, updated.ID, nil, updated)
	return updated, nil
}

func (s *RestaurantService) DeleteRestaurant(ctx context.Context, restaurantID string) error {
	if err := s.restaurantDAO.DeleteRestaurant(ctx, restaurantID); err != nil {
		return err
	}
	s.invalidate(ctx, restaurantID)
	s.publish(ctx, util.ChangeDeleted, restaurantID, nil, nil)
	return nil
}

func (s *RestaurantService) invalidate(ctx context.Context, restaurantID string) {
	s.cacheService.Invalidate(ctx, util.RestaurantInvalidationKeys(restaurantID)...)
	s.cacheService.InvalidateSearch(ctx, util.KindRestaurant)
}

func (s *RestaurantService) publish(ctx context.Context, changeType, id string, before, after interface{}) {
	logger.Info("Restaurant "+changeType, zap.String("restaurantID", id))
	s.eventBus.Publish(ctx, util.EventRestaurantChanged, util.EntityChange{
		Kind:       string(util.KindRestaurant),
		ChangeType: changeType,
		EntityID:   id,
		ActorID:    actorID(ctx),
		Before:     before,
		After:      after,
	})
}
