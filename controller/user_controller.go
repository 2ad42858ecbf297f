// api/controller/user_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	food_errors "github.com/EivorRrz/restro/api/errors"
	"github.com/EivorRrz/restro/api/model"
	"github.com/EivorRrz/restro/api/service"
	"github.com/EivorRrz/restro/api/util"
)

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{userService: userService}
}

func (uc *UserController) RegisterRoutes(r *gin.RouterGroup, mw RouteMiddleware) {
	users := r.Group("/users")
	{
		users.GET("/me", mw.Authenticated(uc.GetMe)...)
		users.PUT("/me", mw.Authenticated(uc.UpdateMe)...)
		users.PUT("/me/password", mw.Authenticated(uc.UpdatePassword)...)
		users.DELETE("/:id", mw.Authenticated(uc.DeleteUser)...)
		users.GET("", mw.AdminOnly(uc.ListUsers)...)
		users.GET("/:id", mw.AdminOnly(uc.GetUser)...)
	}
}

func (uc *UserController) GetMe(c *gin.Context) {
	user, err := uc.userService.GetUser(c.Request.Context(), util.GetUserIDFromContext(c))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve profile")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", user)
}

func (uc *UserController) UpdateMe(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid profile data", err)
		return
	}
	user, err := uc.userService.UpdateProfile(c.Request.Context(), util.GetUserIDFromContext(c), req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update profile")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Profile updated successfully", user)
}

func (uc *UserController) UpdatePassword(c *gin.Context) {
	var req model.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Please provide old and new password", err)
		return
	}
	if err := uc.userService.UpdatePassword(c.Request.Context(), util.GetUserIDFromContext(c), req); err != nil {
		respondWithServiceError(c, err, "Failed to update password")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Password updated successfully", nil)
}

// DeleteUser lets a user delete their own account, or an admin any account.
func (uc *UserController) DeleteUser(c *gin.Context) {
	userID := c.Param("id")
	requester := util.GetUserFromContext(c)
	if requester == nil || (requester.ID != userID && !requester.IsAdmin()) {
		respondWithServiceError(c, food_errors.ErrForbidden, "Failed to delete user")
		return
	}
	if err := uc.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondWithServiceError(c, err, "Failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to list users")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", users)
}

func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve user")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", user)
}
