// api/router/router.go

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/EivorRrz/restro/api/controller"
	"github.com/EivorRrz/restro/api/middleware"
)

func SetupRouter(controllers *controller.Controllers, mw controller.RouteMiddleware) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	if controllers.Health != nil {
		controllers.Health.RegisterRoutes(router)
	}

	api := router.Group("/api/v1")

	controllers.Auth.RegisterRoutes(api, mw)
	controllers.User.RegisterRoutes(api, mw)
	controllers.Restaurant.RegisterRoutes(api, mw)
	controllers.Category.RegisterRoutes(api, mw)
	controllers.Food.RegisterRoutes(api, mw)
	controllers.Order.RegisterRoutes(api, mw)
	controllers.Cache.RegisterRoutes(api, mw)

	return router
}

// RouteGuards builds the middleware set controllers attach per route.
func RouteGuards(auth, rateLimit gin.HandlerFunc) controller.RouteMiddleware {
	return controller.RouteMiddleware{
		Auth:      auth,
		Admin:     middleware.Admin(),
		RateLimit: rateLimit,
	}
}
