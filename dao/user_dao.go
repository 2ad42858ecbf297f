// api/dao/user_dao.go
package dao

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/audit"
	food_errors "github.com/EivorRrz/restro/api/errors"
	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/model"
)

type IUserDAO interface {
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	// GetUserByEmail returns the user including its password and answer hashes.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	UpdateUser(ctx context.Context, user model.User) (*model.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	DeleteUser(ctx context.Context, userID string) error
}

type UserDAO struct {
	Driver       neo4j.DriverWithContext
	AuditService audit.Service
}

var _ IUserDAO = &UserDAO{}

func NewUserDAO(driver neo4j.DriverWithContext, auditService audit.Service) *UserDAO {
	return &UserDAO{Driver: driver, AuditService: auditService}
}

func (dao *UserDAO) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	start := time.Now()
	logger.Info("Creating new user", zap.String("email", user.Email))

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	ts := now()

	query := `
	CREATE (u:User {id: $id})
	SET u += $props
	RETURN u
	`
	params := map[string]any{
		"id": user.ID,
		"props": map[string]any{
			"userName":     user.UserName,
			"email":        strings.ToLower(user.Email),
			"passwordHash": user.PasswordHash,
			"answerHash":   user.AnswerHash,
			"address":      nonNilStrings(user.Address),
			"phone":        user.Phone,
			"usertype":     user.UserType,
			"profile":      user.Profile,
			"createdAt":    ts,
			"updatedAt":    ts,
		},
	}

	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeWrite, query, params)
	if err != nil {
		logger.Error("Failed to create user", zap.Error(err), zap.String("email", user.Email), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrInternalServer
	}

	created := mapNodeToUser(*node)
	logger.Info("User created successfully", zap.String("userID", created.ID), zap.Duration("duration", time.Since(start)))

	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:        audit.ActorFromContext(ctx),
		Action:        "CREATE_USER",
		ResourceType:  "user",
		ResourceID:    created.ID,
		Success:       true,
		ChangeDetails: audit.ChangeDetails(nil, created),
	})
	return created, nil
}

func (dao *UserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeRead, `MATCH (u:User {id: $id}) RETURN u`, map[string]any{"id": userID})
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err), zap.String("userID", userID))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrUserNotFound
	}
	return mapNodeToUser(*node), nil
}

func (dao *UserDAO) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeRead, `MATCH (u:User {email: $email}) RETURN u`,
		map[string]any{"email": strings.ToLower(email)})
	if err != nil {
		logger.Error("Failed to get user by email", zap.Error(err))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrUserNotFound
	}
	return mapNodeToUser(*node), nil
}

func (dao *UserDAO) ListUsers(ctx context.Context) ([]*model.User, error) {
	nodes, err := runList(ctx, dao.Driver, `MATCH (u:User) RETURN u ORDER BY u.createdAt DESC`, nil)
	if err != nil {
		logger.Error("Failed to list users", zap.Error(err))
		return nil, err
	}
	users := make([]*model.User, 0, len(nodes))
	for _, n := range nodes {
		users = append(users, mapNodeToUser(n))
	}
	return users, nil
}

// UpdateUser writes the profile fields of user. Email, type and hashes are
// not touched.
func (dao *UserDAO) UpdateUser(ctx context.Context, user model.User) (*model.User, error) {
	start := time.Now()
	logger.Info("Updating user", zap.String("userID", user.ID))

	oldUser, err := dao.GetUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	query := `
	MATCH (u:User {id: $id})
	SET u += $props
	RETURN u
	`
	params := map[string]any{
		"id": user.ID,
		"props": map[string]any{
			"userName":  user.UserName,
			"address":   nonNilStrings(user.Address),
			"phone":     user.Phone,
			"profile":   user.Profile,
			"updatedAt": now(),
		},
	}

	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeWrite, query, params)
	if err != nil {
		logger.Error("Failed to update user", zap.Error(err), zap.String("userID", user.ID), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	if node == nil {
		return nil, food_errors.ErrUserNotFound
	}

	updated := mapNodeToUser(*node)
	logger.Info("User updated successfully", zap.String("userID", user.ID), zap.Duration("duration", time.Since(start)))

	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:        audit.ActorFromContext(ctx),
		Action:        "UPDATE_USER",
		ResourceType:  "user",
		ResourceID:    user.ID,
		Success:       true,
		ChangeDetails: audit.ChangeDetails(oldUser, updated),
	})
	return updated, nil
}

func (dao *UserDAO) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	query := `
	MATCH (u:User {id: $id})
	SET u.passwordHash = $hash, u.updatedAt = $updatedAt
	RETURN u
	`
	node, err := runSingle(ctx, dao.Driver, neo4j.AccessModeWrite, query, map[string]any{
		"id":        userID,
		"hash":      passwordHash,
		"updatedAt": now(),
	})
	if err != nil {
		logger.Error("Failed to update password", zap.Error(err), zap.String("userID", userID))
		return err
	}
	if node == nil {
		return food_errors.ErrUserNotFound
	}

	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:       audit.ActorFromContext(ctx),
		Action:       "UPDATE_PASSWORD",
		ResourceType: "user",
		ResourceID:   userID,
		Success:      true,
	})
	return nil
}

func (dao *UserDAO) DeleteUser(ctx context.Context, userID string) error {
	deleted, err := runDelete(ctx, dao.Driver, `MATCH (u:User {id: $id}) DETACH DELETE u`, map[string]any{"id": userID})
	if err != nil {
		logger.Error("Failed to delete user", zap.Error(err), zap.String("userID", userID))
		return err
	}
	if deleted == 0 {
		return food_errors.ErrUserNotFound
	}

	logger.Info("User deleted successfully", zap.String("userID", userID))
	dao.AuditService.Record(ctx, audit.AuditLog{
		UserID:       audit.ActorFromContext(ctx),
		Action:       "DELETE_USER",
		ResourceType: "user",
		ResourceID:   userID,
		Success:      true,
	})
	return nil
}

func mapNodeToUser(node neo4j.Node) *model.User {
	props := node.Props
	return &model.User{
		ID:           propString(props, "id"),
		UserName:     propString(props, "userName"),
		Email:        propString(props, "email"),
		PasswordHash: propString(props, "passwordHash"),
		AnswerHash:   propString(props, "answerHash"),
		Address:      propStrings(props, "address"),
		Phone:        propString(props, "phone"),
		UserType:     propString(props, "usertype"),
		Profile:      propString(props, "profile"),
		CreatedAt:    propTime(props, "createdAt"),
		UpdatedAt:    propTime(props, "updatedAt"),
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
