// api/service/category_service.go
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

//go:generate mockgen -source=category_service.go -destination=../test/service_mock/category_service_mock.go -package=mock_service
type ICategoryService interface {
	CreateCategory(ctx context.Context, category model.Category) (*model.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
	UpdateCategory(ctx context.Context, category model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

type CategoryService struct {
	categoryDAO    dao.ICategoryDAO
	cacheService   *util.CacheService
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ ICategoryService = &CategoryService{}

func NewCategoryService(categoryDAO dao.ICategoryDAO, cacheService *util.CacheService, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *CategoryService {
	return &CategoryService{
		categoryDAO:    categoryDAO,
		cacheService:   cacheService,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

func (s *CategoryService) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	if err := s.validationUtil.ValidateCategory(category); err != nil {
		return nil, err
	}
	created, err := s.categoryDAO.CreateCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	s.cacheService.Invalidate(ctx, util.CategoryInvalidationKeys(created.ID)...)
	s.publish(ctx, util.ChangeCreated, created.ID, created)
	return created, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, categoryID string) (*model.Category, error) {
	return util.CacheAside(ctx, s.cacheService, util.CategoryKey(categoryID), func(ctx context.Context) (*model.Category, error) {
		return s.categoryDAO.GetCategory(ctx, categoryID)
	})
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return util.CacheAside(ctx, s.cacheService, util.AllCategoriesKey(), s.categoryDAO.ListCategories)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	if category.ID == "" {
		return nil, food_errors.ErrInvalidCategoryData
	}
	if err := s.validationUtil.ValidateCategory(category); err != nil {
		return nil, err
	}
	updated, err := s.categoryDAO.UpdateCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	s.cacheService.Invalidate(ctx, util.CategoryInvalidationKeys(updated.ID)...)
	s.publish(ctx, util.ChangeUpdated, updated.ID, updated)
	return updated, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryDAO.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}
	s.cacheService.Invalidate(ctx, util.CategoryInvalidationKeys(categoryID)...)
	s.publish(ctx, util.ChangeDeleted, categoryID, nil)
	return nil
}

func (s *CategoryService) publish(ctx context.Context, changeType, id string, after interface{}) {
	logger.Info("Category "+changeType, zap.String("categoryID", id))
	s.eventBus.Publish(ctx, util.EventCategoryChanged, util.EntityChange{
		Kind:       string(util.KindCategory),
		ChangeType: changeType,
		EntityID:   id,
		ActorID:    actorID(ctx),
		After:      after,
	})
}
