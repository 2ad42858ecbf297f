// api/controller/category_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EivorRrz/restro/api/model"
	"github.com/EivorRrz/restro/api/service"
	"github.com/EivorRrz/restro/api/util"
)

type CategoryController struct {
	categoryService service.ICategoryService
}

func NewCategoryController(categoryService service.ICategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

func (cc *CategoryController) RegisterRoutes(r *gin.RouterGroup, mw RouteMiddleware) {
	categories := r.Group("/categories")
	{
		categories.GET("", mw.Public(cc.ListCategories)...)
		categories.GET("/:id", mw.Public(cc.GetCategory)...)
		categories.POST("", mw.AdminOnly(cc.CreateCategory)...)
		categories.PUT("/:id", mw.AdminOnly(cc.UpdateCategory)...)
		categories.DELETE("/:id", mw.AdminOnly(cc.DeleteCategory)...)
	}
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var category model.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid category data", err)
		return
	}
	category.ID = ""

	created, err := cc.categoryService.CreateCategory(c.Request.Context(), category)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create category")
		return
	}
	util.RespondWithData(c, http.StatusCreated, "Category created successfully", created)
}

func (cc *CategoryController) GetCategory(c *gin.Context) {
	category, err := cc.categoryService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve category")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", category)
}

func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to list categories")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", categories)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id := c.Param("id")
	existing, err := cc.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update category")
		return
	}
	category := *existing
	if err := c.ShouldBindJSON(&category); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid category data", err)
		return
	}
	category.ID = id

	updated, err := cc.categoryService.UpdateCategory(c.Request.Context(), category)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update category")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Category updated successfully", updated)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	if err := cc.categoryService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}
