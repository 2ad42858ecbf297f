// api/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/dao"
	food_errors "github.com/EivorRrz/restro/api/errors"
	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/metrics"
	"github.com/EivorRrz/restro/api/model"
	"github.com/EivorRrz/restro/api/util"
)

// BlacklistEntry is the cached value marking a token as revoked. ExpiresAt is
// the token's own expiry in Unix seconds.
type BlacklistEntry struct {
	ExpiresAt int64 `json:"expiresAt"`
}

//go:generate mockgen -source=auth_service.go -destination=../test/service_mock/auth_service_mock.go -package=mock_service

// IAuthService defines session operations
type IAuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	ValidateToken(ctx context.Context, rawToken string) (*model.User, *util.TokenClaims, error)
	Logout(ctx context.Context, rawToken string) error
	ResetPassword(ctx context.Context, req model.ResetPasswordRequest) error
}

type AuthService struct {
	userDAO        dao.IUserDAO
	cacheService   *util.CacheService
	tokens         *util.TokenUtil
	passwords      *util.PasswordUtil
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
	metrics        *metrics.Metrics
}

var _ IAuthService = &AuthService{}

func NewAuthService(
	userDAO dao.IUserDAO,
	cacheService *util.CacheService,
	tokens *util.TokenUtil,
	passwords *util.PasswordUtil,
	validationUtil *util.ValidationUtil,
	eventBus *util.EventBus,
	m *metrics.Metrics,
) *AuthService {
	return &AuthService{
		userDAO:        userDAO,
		cacheService:   cacheService,
		tokens:         tokens,
		passwords:      passwords,
		validationUtil: validationUtil,
		eventBus:       eventBus,
		metrics:        m,
	}
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	if err := s.validationUtil.ValidateRegister(req); err != nil {
		return nil, err
	}

	_, err := s.userDAO.GetUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, food_errors.ErrUserConflict
	case !errors.Is(err, food_errors.ErrUserNotFound):
		return nil, err
	}

	passwordHash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", food_errors.ErrInternalServer, err)
	}
	answerHash, err := s.passwords.Hash(req.Answer)
	if err != nil {
		return nil, fmt.Errorf("%w: hash answer: %v", food_errors.ErrInternalServer, err)
	}

	user, err := s.userDAO.CreateUser(ctx, model.User{
		UserName:     req.UserName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		AnswerHash:   answerHash,
		Address:      req.Address,
		Phone:        req.Phone,
		UserType:     model.UserTypeClient,
	})
	if err != nil {
		return nil, err
	}

	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", food_errors.ErrInternalServer, err)
	}

	s.cacheService.Cache(ctx, util.UserKey(user.ID), user)
	s.cacheService.Invalidate(ctx, util.AllUsersKey().Name)

	logger.Info("User registered", zap.String("userID", user.ID))
	s.eventBus.Publish(ctx, util.EventUserRegistered, util.EntityChange{
		Kind: string(util.KindUser), ChangeType: util.ChangeCreated, EntityID: user.ID, ActorID: user.ID, After: user,
	})
	return &model.AuthResponse{Token: token, User: user}, nil
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if err := s.validationUtil.Validate(req, food_errors.ErrInvalidUserData); err != nil {
		return nil, err
	}

	user, err := s.userDAO.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if !s.passwords.Matches(user.PasswordHash, req.Password) {
		s.metrics.AuthFailure("invalid_credentials")
		return nil, food_errors.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", food_errors.ErrInternalServer, err)
	}

	s.cacheService.Cache(ctx, util.UserKey(user.ID), user)

	logger.Info("User logged in", zap.String("userID", user.ID))
	s.eventBus.Publish(ctx, util.EventUserLoggedIn, util.EntityChange{
		Kind: string(util.KindUser), ChangeType: util.ChangeUpdated, EntityID: user.ID, ActorID: user.ID,
	})
	return &model.AuthResponse{Token: token, User: user}, nil
}

// ValidateToken authenticates a bearer token. Checks run in a fixed order:
// presence, signature, revocation, expiry, then the user must still exist.
func (s *AuthService) ValidateToken(ctx context.Context, rawToken string) (*model.User, *util.TokenClaims, error) {
	if rawToken == "" {
		return nil, nil, s.reject(food_errors.ErrMissingToken)
	}

	claims, err := s.tokens.Parse(rawToken)
	if err != nil {
		return nil, nil, s.reject(err)
	}

	if s.isRevoked(ctx, rawToken) {
		return nil, nil, s.reject(food_errors.ErrTokenRevoked)
	}

	if s.tokens.Expired(claims) {
		return nil, nil, s.reject(food_errors.ErrTokenExpired)
	}

	user, err := util.CacheAside(ctx, s.cacheService, util.UserKey(claims.Subject), func(ctx context.Context) (*model.User, error) {
		return s.userDAO.GetUser(ctx, claims.Subject)
	})
	if errors.Is(err, food_errors.ErrUserNotFound) {
		return nil, nil, s.reject(food_errors.NewAuthError(food_errors.AuthInvalidToken, err))
	}
	if err != nil {
		return nil, nil, err
	}
	return user, claims, nil
}

// isRevoked reports whether rawToken was logged out and the revocation is
// still in force. An unreachable cache reads as not revoked.
func (s *AuthService) isRevoked(ctx context.Context, rawToken string) bool {
	var entry BlacklistEntry
	if !s.cacheService.Get(ctx, util.BlacklistKey(rawToken), &entry) {
		return false
	}
	return s.tokens.Now().Before(time.Unix(entry.ExpiresAt, 0))
}

func (s *AuthService) reject(err error) error {
	if authErr, ok := food_errors.AsAuthError(err); ok {
		s.metrics.AuthFailure(string(authErr.Kind))
	}
	return err
}

// Logout revokes rawToken for the rest of its lifetime and drops the cached
// profile of its user.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	claims, err := s.tokens.Parse(rawToken)
	if err != nil {
		return err
	}

	remaining := s.tokens.Remaining(claims)
	if remaining > 0 {
		ttl := time.Duration(math.Ceil(remaining.Seconds())) * time.Second
		entry := BlacklistEntry{ExpiresAt: claims.ExpiresAtTime().Unix()}
		if !s.cacheService.Set(ctx, util.BlacklistKey(rawToken), entry, ttl) {
			logger.Error("Failed to blacklist token on logout; token stays valid until expiry",
				zap.String("userID", claims.Subject))
		}
	}

	s.cacheService.Invalidate(ctx, util.UserKey(claims.Subject).Name)

	logger.Info("User logged out", zap.String("userID", claims.Subject), zap.Duration("remaining", remaining))
	s.eventBus.Publish(ctx, util.EventUserLoggedOut, util.EntityChange{
		Kind: string(util.KindUser), ChangeType: util.ChangeUpdated, EntityID: claims.Subject, ActorID: claims.Subject,
	})
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, req model.ResetPasswordRequest) error {
	if err := s.validationUtil.Validate(req, food_errors.ErrInvalidUserData); err != nil {
		return err
	}

	user, err := s.userDAO.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, food_errors.ErrUserNotFound) {
		return food_errors.ErrInvalidAnswer
	}
	if err != nil {
		return err
	}
	if !s.passwords.Matches(user.AnswerHash, req.Answer) {
		return food_errors.ErrInvalidAnswer
	}

	hash, err := s.passwords.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("%w: hash password: %v", food_errors.ErrInternalServer, err)
	}
	if err := s.userDAO.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.cacheService.Invalidate(ctx, util.UserKey(user.ID).Name)
	logger.Info("Password reset", zap.String("userID", user.ID))
	return nil
}
