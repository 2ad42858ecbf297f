// api/controller/restaurant_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EivorRrz/restro/api/model"
	"github.com/EivorRrz/restro/api/service"
	"github.com/EivorRrz/restro/api/util"
)

type RestaurantController struct {
	restaurantService service.IRestaurantService
}

func NewRestaurantController(restaurantService service.IRestaurantService) *RestaurantController {
	return &RestaurantController{restaurantService: restaurantService}
}

func (rc *RestaurantController) RegisterRoutes(r *gin.RouterGroup, mw RouteMiddleware) {
	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", mw.Public(rc.ListRestaurants)...)
		restaurants.GET("/search", mw.Public(rc.SearchRestaurants)...)
		restaurants.GET("/:id", mw.Public(rc.GetRestaurant)...)
		restaurants.POST("", mw.AdminOnly(rc.CreateRestaurant)...)
		restaurants.PUT("/:id", mw.AdminOnly(rc.UpdateRestaurant)...)
		restaurants.DELETE("/:id", mw.AdminOnly(rc.DeleteRestaurant)...)
	}
}

func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	restaurant := model.NewRestaurant()
	if err := c.ShouldBindJSON(&restaurant); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid restaurant data", err)
		return
	}
	restaurant.ID = ""

	created, err := rc.restaurantService.CreateRestaurant(c.Request.Context(), restaurant)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create restaurant")
		return
	}
	util.RespondWithData(c, http.StatusCreated, "Restaurant created successfully", created)
}

func (rc *RestaurantController) GetRestaurant(c *gin.Context) {
	restaurant, err := rc.restaurantService.GetRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve restaurant")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", restaurant)
}

func (rc *RestaurantController) ListRestaurants(c *gin.Context) {
	restaurants, err := rc.restaurantService.ListRestaurants(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to list restaurants")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", restaurants)
}

func (rc *RestaurantController) SearchRestaurants(c *gin.Context) {
	restaurants, err := rc.restaurantService.SearchRestaurants(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to search restaurants")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", restaurants)
}

// UpdateRestaurant applies the request body over the stored restaurant, so
// omitted fields keep their values.
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	id := c.Param("id")
	existing, err := rc.restaurantService.GetRestaurant(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update restaurant")
		return
	}
	restaurant := *existing
	if err := c.ShouldBindJSON(&restaurant); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid restaurant data", err)
		return
	}
	restaurant.ID = id

	updated, err := rc.restaurantService.UpdateRestaurant(c.Request.Context(), restaurant)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update restaurant")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Restaurant updated successfully", updated)
}

func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	if err := rc.restaurantService.DeleteRestaurant(c.Request.Context(), c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete restaurant")
		return
	}
	c.Status(http.StatusNoContent)
}
