package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/EivorRrz/restro/api/controller"
	"github.com/EivorRrz/restro/api/service"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	pass := func(c *gin.Context) { c.Next() }

	controllers := controller.InitializeControllers(&service.Services{}, nil,
		controller.NewHealthController(map[string]controller.Pinger{}, nil))
	r := SetupRouter(controllers, RouteGuards(deny, pass))

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /health",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/logout",
		"GET /api/v1/users/me",
		"GET /api/v1/users/:id",
		"GET /api/v1/restaurants/search",
		"GET /api/v1/foods/category/:categoryId",
		"PUT /api/v1/orders/:id/status",
		"DELETE /api/v1/cache/:kind",
	} {
		assert.True(t, registered[want], want)
	}

	t.Run("GuardedRouteRunsAuth", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/orders/mine", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Health", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
