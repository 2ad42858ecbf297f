// api/dao/category_dao.go
package dao

import (
	"context"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/audit"
	food_errors "github.com/EivorRrz/restro/api/errors"
	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/model"
)

type ICategoryDAO interface {
	CreateCategory(ctx context.Context, category model.Category) (*model.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
	UpdateCategory(ctx context.Context, category model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

type CategoryDAO struct {
	Driver       neo4j.DriverWithContext
	AuditService audit.Service
}

var _ ICategoryDAO = &CategoryDAO{}

func NewCategoryDAO(driver neo4j.DriverWithContext, auditService audit.Service) *CategoryDAO {
	return &CategoryDAO{Driver: driver, AuditService: auditService}
}

func (dao *CategoryDAO) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	ts := now()
	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeWrite,
		`CREATE (c:Category {id: $id}) SET c += $props RETURN c`,
		map[string]any{
			"id": category.ID,
			"props": map[string]any{
				"title":     category.Title,
				"imageUrl":  category.ImageURL,
				"createdAt": ts,
				"updatedAt": ts,
			},
		})
	if err != nil {
		logger.Error("Failed to create category", zap.Error(err), zap.String("title", category.Title))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrInternalServer
	}

	created := mapNodeToCategory(*node)
	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:        audit.ActorFromContext(ctx),
		Action:        "CREATE_CATEGORY",
		ResourceType:  "category",
		ResourceID:    created.ID,
		Success:       true,
		ChangeDetails: audit.ChangeDetails(nil, created),
	})
	return created, nil
}

func (dao *CategoryDAO) GetCategory(ctx context.Context, categoryID string) (*model.Category, error) {
	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeRead,
		`MATCH (c:Category {id: $id}) RETURN c`, map[string]any{"id": categoryID})
	if err != nil {
		logger.Error("Failed to get category", zap.Error(err), zap.String("categoryID", categoryID))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrCategoryNotFound
	}
	return mapNodeToCategory(*node), nil
}

func (dao *CategoryDAO) ListCategories(ctx context.Context) ([]*model.Category, error) {
	nodes, err := runList(ctx, dao.Driver, `MATCH (c:Category) RETURN c ORDER BY c.title`, nil)
	if err != nil {
		logger.Error("Failed to list categories", zap.Error(err))
		return nil, err
	}
	categories := make([]*model.Category, 0, len(nodes))
	for _, n := range nodes {
		categories = append(categories, mapNodeToCategory(n))
	}
	return categories, nil
}

func (dao *CategoryDAO) UpdateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	oldCategory, err := dao.GetCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeWrite,
		`MATCH (c:Category {id: $id}) SET c += $props RETURN c`,
		map[string]any{
			"id": category.ID,
			"props": map[string]any{
				"title":     category.Title,
				"imageUrl":  category.ImageURL,
				"updatedAt": now(),
			},
		})
	if err != nil {
		logger.Error("Failed to update category", zap.Error(err), zap.String("categoryID", category.ID))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrCategoryNotFound
	}

	updated := mapNodeToCategory(*node)
	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:        audit.ActorFromContext(ctx),
		Action:        "UPDATE_CATEGORY",
		ResourceType:  "category",
		ResourceID:    category.ID,
		Success:       true,
		ChangeDetails: audit.ChangeDetails(oldCategory, updated),
	})
	return updated, nil
}

func (dao *CategoryDAO) DeleteCategory(ctx context.Context, categoryID string) error {
	deleted, err := runDelete(ctx, dao.Driver, `MATCH (c:Category {id: $id}) DETACH DELETE c`, map[string]any{"id": categoryID})
	if err != nil {
		logger.Error("Failed to delete category", zap.Error(err), zap.String("categoryID", categoryID))
		return err
	}
	if deleted == 0 {
		return food_errors.ErrCategoryNotFound
	}

	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:       audit.ActorFromContext(ctx),
		Action:       "DELETE_CATEGORY",
		ResourceType: "category",
		ResourceID:   categoryID,
		Success:      true,
	})
	return nil
}

func mapNodeToCategory(node neo4j.Node) *model.Category {
	props := node.Props
	return &model.Category{
		ID:        propString(props, "id"),
		Title:     propString(props, "title"),
		ImageURL:  propString(props, "imageUrl"),
		CreatedAt: propTime(props, "createdAt"),
		UpdatedAt: propTime(props, "updatedAt"),
	}
}
