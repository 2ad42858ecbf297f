// api/controller/controllers.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	food_errors "github.com/EivorRrz/restro/api/errors"
	"github.com/EivorRrz/restro/api/service"
	"github.com/EivorRrz/restro/api/util"
)

// RouteMiddleware carries the per-route guards controllers attach.
type RouteMiddleware struct {
	Auth      gin.HandlerFunc
	Admin     gin.HandlerFunc
	RateLimit gin.HandlerFunc
}

// Authenticated chains the guards of a route that needs a logged-in user.
func (m RouteMiddleware) Authenticated(h gin.HandlerFunc) []gin.HandlerFunc {
	return []gin.HandlerFunc{m.Auth, m.RateLimit, h}
}

// AdminOnly chains the guards of a route reserved to admins.
func (m RouteMiddleware) AdminOnly(h gin.HandlerFunc) []gin.HandlerFunc {
	return []gin.HandlerFunc{m.Auth, m.RateLimit, m.Admin, h}
}

// Public chains the guards of an anonymous route.
func (m RouteMiddleware) Public(h gin.HandlerFunc) []gin.HandlerFunc {
	return []gin.HandlerFunc{m.RateLimit, h}
}

type Controllers struct {
	Auth       *AuthController
	User       *UserController
	Restaurant *RestaurantController
	Category   *CategoryController
	Food       *FoodController
	Order      *OrderController
	Cache      *CacheController
	Health     *HealthController
}

func InitializeControllers(services *service.Services, cacheService *util.CacheService, health *HealthController) *Controllers {
	return &Controllers{
		Auth:       NewAuthController(services.Auth),
		User:       NewUserController(services.User),
		Restaurant: NewRestaurantController(services.Restaurant),
		Category:   NewCategoryController(services.Category),
		Food:       NewFoodController(services.Food),
		Order:      NewOrderController(services.Order),
		Cache:      NewCacheController(cacheService),
		Health:     health,
	}
}

// respondWithServiceError maps a service error to its HTTP status. Unknown
// errors become a 500 carrying fallback as the message.
func respondWithServiceError(c *gin.Context, err error, fallback string) {
	if authErr, ok := food_errors.AsAuthError(err); ok {
		util.RespondWithError(c, http.StatusUnauthorized, authErr.Message(), err)
		return
	}

	switch {
	case isAny(err,
		food_errors.ErrUserNotFound,
		food_errors.ErrRestaurantNotFound,
		food_errors.ErrCategoryNotFound,
		food_errors.ErrFoodNotFound,
		food_errors.ErrOrderNotFound):
		util.RespondWithError(c, http.StatusNotFound, err.Error(), err)
	case isAny(err,
		food_errors.ErrInvalidUserData,
		food_errors.ErrInvalidRestaurantData,
		food_errors.ErrInvalidCategoryData,
		food_errors.ErrInvalidFoodData,
		food_errors.ErrInvalidOrderData,
		food_errors.ErrEmptyCart,
		food_errors.ErrInvalidOrderStatus,
		food_errors.ErrInvalidSearchCriteria,
		food_errors.ErrInvalidPagination,
		food_errors.ErrFoodUnavailable,
		food_errors.ErrUnknownCacheKind):
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
	case isAny(err, food_errors.ErrUserConflict, food_errors.ErrIllegalOrderTransition):
		util.RespondWithError(c, http.StatusConflict, err.Error(), err)
	case isAny(err, food_errors.ErrInvalidCredentials, food_errors.ErrInvalidAnswer, food_errors.ErrUnauthorized):
		util.RespondWithError(c, http.StatusUnauthorized, err.Error(), err)
	case errors.Is(err, food_errors.ErrForbidden):
		util.RespondWithError(c, http.StatusForbidden, err.Error(), err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, err)
	}
}

func isAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
