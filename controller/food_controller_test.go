package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/EivorRrz/restro/api/controller"
	food_errors "github.com/EivorRrz/restro/api/errors"
	"github.com/EivorRrz/restro/api/model"
	mock_service "github.com/EivorRrz/restro/api/test/service_mock"
)

func TestFoodController(t *testing.T) {
	ctrl := gomock.NewController(t)
	mw, _ := testGuards(ctrl)
	foodService := mock_service.NewMockIFoodService(ctrl)
	router := newTestRouter(mw, controller.NewFoodController(foodService))

	pizza := &model.Food{ID: "f1", Title: "Pizza", Description: "Cheese", Price: 9.5, Restaurant: "r1", Category: "c1", Rating: 5, IsAvailable: true}

	t.Run("GetFood_Public", func(t *testing.T) {
		foodService.EXPECT().GetFood(gomock.Any(), "f1").Return(pizza, nil)

		w := doRequest(router, http.MethodGet, "/api/v1/foods/f1", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got model.Food
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
		assert.Equal(t, "Pizza", got.Title)
	})

	t.Run("GetFood_NotFound", func(t *testing.T) {
		foodService.EXPECT().GetFood(gomock.Any(), "nope").Return(nil, food_errors.ErrFoodNotFound)

		w := doRequest(router, http.MethodGet, "/api/v1/foods/nope", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ListByCategory", func(t *testing.T) {
		foodService.EXPECT().ListFoodsByCategory(gomock.Any(), "c1").Return([]*model.Food{pizza}, nil)

		w := doRequest(router, http.MethodGet, "/api/v1/foods/category/c1", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ListByRestaurant", func(t *testing.T) {
		foodService.EXPECT().ListFoodsByRestaurant(gomock.Any(), "r1").Return([]*model.Food{}, nil)

		w := doRequest(router, http.MethodGet, "/api/v1/foods/restaurant/r1", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Search", func(t *testing.T) {
		foodService.EXPECT().SearchFoods(gomock.Any(), "pepperoni pizza").Return([]*model.Food{}, nil)

		w := doRequest(router, http.MethodGet, "/api/v1/foods/search?query=pepperoni+pizza", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Search_EmptyQuery", func(t *testing.T) {
		foodService.EXPECT().SearchFoods(gomock.Any(), "").Return(nil, food_errors.ErrInvalidSearchCriteria)

		w := doRequest(router, http.MethodGet, "/api/v1/foods/search", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Create_RequiresAuth", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/foods", "", `{"title":"Soup"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Create_RequiresAdmin", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/foods", "client-token", `{"title":"Soup"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Create_AppliesDefaults", func(t *testing.T) {
		foodService.EXPECT().CreateFood(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f model.Food) (*model.Food, error) {
				assert.True(t, f.IsAvailable)
				assert.Equal(t, 5.0, f.Rating)
				assert.Empty(t, f.ID)
				f.ID = "f2"
				return &f, nil
			})

		w := doRequest(router, http.MethodPost, "/api/v1/foods", "admin-token",
			`{"id":"forged","title":"Soup","description":"Hot","price":4,"restaurant":"r1"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Update_MergesOverStoredFood", func(t *testing.T) {
		foodService.EXPECT().GetFood(gomock.Any(), "f1").Return(pizza, nil)
		foodService.EXPECT().UpdateFood(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f model.Food) (*model.Food, error) {
				assert.Equal(t, "f1", f.ID)
				assert.Equal(t, "c2", f.Category)
				assert.Equal(t, "Pizza", f.Title)
				return &f, nil
			})

		w := doRequest(router, http.MethodPut, "/api/v1/foods/f1", "admin-token", `{"category":"c2"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "c1", pizza.Category, "stored record is not mutated")
	})

	t.Run("Update_InvalidData", func(t *testing.T) {
		foodService.EXPECT().GetFood(gomock.Any(), "f1").Return(pizza, nil)
		foodService.EXPECT().UpdateFood(gomock.Any(), gomock.Any()).Return(nil, food_errors.ErrInvalidFoodData)

		w := doRequest(router, http.MethodPut, "/api/v1/foods/f1", "admin-token", `{"price":-1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		foodService.EXPECT().DeleteFood(gomock.Any(), "f1").Return(nil)

		w := doRequest(router, http.MethodDelete, "/api/v1/foods/f1", "admin-token", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Delete_DatabaseFailure", func(t *testing.T) {
		foodService.EXPECT().DeleteFood(gomock.Any(), "f1").Return(food_errors.ErrDatabaseOperation)

		w := doRequest(router, http.MethodDelete, "/api/v1/foods/f1", "admin-token", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to delete food", decode(t, w).Message)
	})
}
