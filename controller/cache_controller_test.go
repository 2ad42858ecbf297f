package controller_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/EivorRrz/restro/api/controller"
	"github.com/EivorRrz/restro/api/db"
	"github.com/EivorRrz/restro/api/model"
	"github.com/EivorRrz/restro/api/util"
)

func TestCacheController(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mw, _ := testGuards(ctrl)

	store := db.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })
	cache := util.NewCacheService(store)
	router := newTestRouter(mw, controller.NewCacheController(cache))

	require.True(t, cache.Cache(ctx, util.FoodKey("f1"), &model.Food{ID: "f1"}))
	require.True(t, cache.Cache(ctx, util.AllFoodsKey(), []*model.Food{{ID: "f1"}}))
	require.True(t, cache.Cache(ctx, util.RestaurantKey("r1"), &model.Restaurant{ID: "r1"}))

	t.Run("UnknownKind", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/api/v1/cache/orders", "admin-token", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ClientForbidden", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/api/v1/cache/foods", "client-token", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.True(t, cache.Exists(ctx, util.FoodKey("f1").Name))
	})

	t.Run("FlushesOnlyThatKind", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/api/v1/cache/foods", "admin-token", "")
		require.Equal(t, http.StatusOK, w.Code)

		var result struct {
			Kind    string `json:"kind"`
			Deleted int    `json:"deleted"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &result))
		assert.Equal(t, "food", result.Kind)
		assert.Equal(t, 2, result.Deleted)

		assert.False(t, cache.Exists(ctx, util.FoodKey("f1").Name))
		assert.False(t, cache.Exists(ctx, util.AllFoodsKey().Name))
		assert.True(t, cache.Exists(ctx, util.RestaurantKey("r1").Name))
	})
}

func TestHealthController(t *testing.T) {
	healthy := controller.PingFunc(func(context.Context) error { return nil })
	down := controller.PingFunc(func(context.Context) error { return errors.New("connection refused") })

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics\n"))
	})

	tests := []struct {
		name     string
		checks   map[string]controller.Pinger
		wantCode int
	}{
		{"AllHealthy", map[string]controller.Pinger{"cache": healthy, "neo4j": healthy}, http.StatusOK},
		{"DependencyDown", map[string]controller.Pinger{"cache": down, "neo4j": healthy}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			controller.NewHealthController(tt.checks, metrics).RegisterRoutes(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.wantCode, w.Code)

			var body struct {
				Success bool              `json:"success"`
				Checks  map[string]string `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode == http.StatusOK, body.Success)
			assert.Equal(t, "ok", body.Checks["neo4j"])
		})
	}

	t.Run("Metrics", func(t *testing.T) {
		router := gin.New()
		controller.NewHealthController(nil, metrics).RegisterRoutes(router)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "# metrics")
	})
}
