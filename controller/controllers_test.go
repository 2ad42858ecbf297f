package controller_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/EivorRrz/restro/api/controller"
	food_errors "github.com/EivorRrz/restro/api/errors"
	"github.com/EivorRrz/restro/api/middleware"
	"github.com/EivorRrz/restro/api/model"
	mock_service "github.com/EivorRrz/restro/api/test/service_mock"
	"github.com/EivorRrz/restro/api/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	clientUser = &model.User{ID: "u1", UserName: "ana", UserType: model.UserTypeClient}
	adminUser  = &model.User{ID: "a1", UserName: "root", UserType: model.UserTypeAdmin}
)

// testGuards authenticates "client-token" and "admin-token" and lets every
// request past the rate limiter.
func testGuards(ctrl *gomock.Controller) (controller.RouteMiddleware, *mock_service.MockIAuthService) {
	authService := mock_service.NewMockIAuthService(ctrl)
	authService.EXPECT().ValidateToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token string) (*model.User, *util.TokenClaims, error) {
			switch token {
			case "client-token":
				return clientUser, &util.TokenClaims{}, nil
			case "admin-token":
				return adminUser, &util.TokenClaims{}, nil
			case "":
				return nil, nil, food_errors.ErrMissingToken
			default:
				return nil, nil, food_errors.ErrInvalidToken
			}
		}).AnyTimes()

	return controller.RouteMiddleware{
		Auth:      middleware.Auth(authService),
		Admin:     middleware.Admin(),
		RateLimit: func(c *gin.Context) { c.Next() },
	}, authService
}

type routeRegistrar interface {
	RegisterRoutes(r *gin.RouterGroup, mw controller.RouteMiddleware)
}

func newTestRouter(mw controller.RouteMiddleware, controllers ...routeRegistrar) *gin.Engine {
	router := gin.New()
	api := router.Group("/api/v1")
	for _, c := range controllers {
		c.RegisterRoutes(api, mw)
	}
	return router
}

func doRequest(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
