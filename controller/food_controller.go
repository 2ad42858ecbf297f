// api/controller/food_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EivorRrz/restro/api/model"
	"github.com/EivorRrz/restro/api/service"
	"github.com/EivorRrz/restro/api/util"
)

type FoodController struct {
	foodService service.IFoodService
}

func NewFoodController(foodService service.IFoodService) *FoodController {
	return &FoodController{foodService: foodService}
}

func (fc *FoodController) RegisterRoutes(r *gin.RouterGroup, mw RouteMiddleware) {
	foods := r.Group("/foods")
	{
		foods.GET("", mw.Public(fc.ListFoods)...)
		foods.GET("/search", mw.Public(fc.SearchFoods)...)
		foods.GET("/category/:categoryId", mw.Public(fc.ListFoodsByCategory)...)
		foods.GET("/restaurant/:restaurantId", mw.Public(fc.ListFoodsByRestaurant)...)
		foods.GET("/:id", mw.Public(fc.GetFood)...)
		foods.POST("", mw.AdminOnly(fc.CreateFood)...)
		foods.PUT("/:id", mw.AdminOnly(fc.UpdateFood)...)
		foods.DELETE("/:id", mw.AdminOnly(fc.DeleteFood)...)
	}
}

func (fc *FoodController) CreateFood(c *gin.Context) {
	food := model.NewFood()
	if err := c.ShouldBindJSON(&food); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid food data", err)
		return
	}
	food.ID = ""

	created, err := fc.foodService.CreateFood(c.Request.Context(), food)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create food")
		return
	}
	util.RespondWithData(c, http.StatusCreated, "Food created successfully", created)
}

func (fc *FoodController) GetFood(c *gin.Context) {
	food, err := fc.foodService.GetFood(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve food")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", food)
}

func (fc *FoodController) ListFoods(c *gin.Context) {
	foods, err := fc.foodService.ListFoods(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to list foods")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", foods)
}

func (fc *FoodController) ListFoodsByCategory(c *gin.Context) {
	foods, err := fc.foodService.ListFoodsByCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to list foods")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", foods)
}

func (fc *FoodController) ListFoodsByRestaurant(c *gin.Context) {
	foods, err := fc.foodService.ListFoodsByRestaurant(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to list foods")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", foods)
}

func (fc *FoodController) SearchFoods(c *gin.Context) {
	foods, err := fc.foodService.SearchFoods(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to search foods")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", foods)
}

func (fc *FoodController) UpdateFood(c *gin.Context) {
	id := c.Param("id")
	existing, err := fc.foodService.GetFood(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update food")
		return
	}
	food := *existing
	if err := c.ShouldBindJSON(&food); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid food data", err)
		return
	}
	food.ID = id

	updated, err := fc.foodService.UpdateFood(c.Request.Context(), food)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update food")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Food updated successfully", updated)
}

func (fc *FoodController) DeleteFood(c *gin.Context) {
	if err := fc.foodService.DeleteFood(c.Request.Context(), c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete food")
		return
	}
	c.Status(http.StatusNoContent)
}
