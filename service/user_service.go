// api/service/user_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/dao"
	food_errors "github.com/EivorRrz/restro/api/errors"
	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/model"
	"github.com/EivorRrz/restro/api/util"
)

//go:generate mockgen -source=user_service.go -destination=../test/service_mock/user_service_mock.go -package=mock_service

// IUserService defines the interface for user profile operations
type IUserService interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.User, error)
	UpdatePassword(ctx context.Context, userID string, req model.UpdatePasswordRequest) error
	DeleteUser(ctx context.Context, userID string) error
}

type UserService struct {
	userDAO        dao.IUserDAO
	cacheService   *util.CacheService
	passwords      *util.PasswordUtil
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IUserService = &UserService{}

func NewUserService(userDAO dao.IUserDAO, cacheService *util.CacheService, passwords *util.PasswordUtil, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *UserService {
	return &UserService{
		userDAO:        userDAO,
		cacheService:   cacheService,
		passwords:      passwords,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return util.CacheAside(ctx, s.cacheService, util.UserKey(userID), func(ctx context.Context) (*model.User, error) {
		return s.userDAO.GetUser(ctx, userID)
	})
}

func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return util.CacheAside(ctx, s.cacheService, util.AllUsersKey(), s.userDAO.ListUsers)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.User, error) {
	if err := s.validationUtil.Validate(req, food_errors.ErrInvalidUserData); err != nil {
		return nil, err
	}

	current, err := s.userDAO.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	updated := *current
	if req.UserName != "" {
		updated.UserName = req.UserName
	}
	if req.Address != nil {
		updated.Address = req.Address
	}
	if req.Phone != "" {
		updated.Phone = req.Phone
	}
	if req.Profile != "" {
		updated.Profile = req.Profile
	}

	user, err := s.userDAO.UpdateUser(ctx, updated)
	if err != nil {
		return nil, err
	}

	s.cacheService.Invalidate(ctx, util.UserInvalidationKeys(userID)...)
	logger.Info("User profile updated", zap.String("userID", userID))
	s.eventBus.Publish(ctx, util.EventUserUpdated, util.EntityChange{
		Kind: string(util.KindUser), ChangeType: util.ChangeUpdated, EntityID: userID, ActorID: userID,
		Before: current, After: user,
	})
	return user, nil
}

func (s *UserService) UpdatePassword(ctx context.Context, userID string, req model.UpdatePasswordRequest) error {
	if err := s.validationUtil.Validate(req, food_errors.ErrInvalidUserData); err != nil {
		return err
	}

	current, err := s.userDAO.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if !s.passwords.Matches(current.PasswordHash, req.OldPassword) {
		return food_errors.ErrInvalidCredentials
	}

	hash, err := s.passwords.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("%w: hash password: %v", food_errors.ErrInternalServer, err)
	}
	if err := s.userDAO.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	s.cacheService.Invalidate(ctx, util.UserKey(userID).Name)
	logger.Info("User password updated", zap.String("userID", userID))
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userDAO.DeleteUser(ctx, userID); err != nil {
		return err
	}

	s.cacheService.Invalidate(ctx, util.UserInvalidationKeys(userID)...)
	logger.Info("User deleted", zap.String("userID", userID))
	s.eventBus.Publish(ctx, util.EventUserDeleted, util.EntityChange{
		Kind: string(util.KindUser), ChangeType: util.ChangeDeleted, EntityID: userID,
	})
	return nil
}
