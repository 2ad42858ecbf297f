// api/controller/auth_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	food_errors "github.com/EivorRrz/restro/api/errors"
	"github.com/EivorRrz/restro/api/model"
	"github.com/EivorRrz/restro/api/service"
	"github.com/EivorRrz/restro/api/util"
)

type AuthController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (ac *AuthController) RegisterRoutes(r *gin.RouterGroup, mw RouteMiddleware) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", mw.Public(ac.Register)...)
		auth.POST("/login", mw.Public(ac.Login)...)
		auth.POST("/reset-password", mw.Public(ac.ResetPassword)...)
		auth.POST("/logout", mw.Authenticated(ac.Logout)...)
	}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid registration data", err)
		return
	}

	resp, err := ac.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to register user")
		return
	}
	util.RespondWithData(c, http.StatusCreated, "User registered successfully", resp)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Please provide email and password", err)
		return
	}

	resp, err := ac.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to log in")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Login successful", resp)
}

func (ac *AuthController) Logout(c *gin.Context) {
	token := c.GetString(util.ContextToken)
	if token == "" {
		respondWithServiceError(c, food_errors.ErrMissingToken, "Failed to log out")
		return
	}
	if err := ac.authService.Logout(c.Request.Context(), token); err != nil {
		respondWithServiceError(c, err, "Failed to log out")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Logged out successfully", nil)
}

func (ac *AuthController) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid reset request", err)
		return
	}
	if err := ac.authService.ResetPassword(c.Request.Context(), req); err != nil {
		respondWithServiceError(c, err, "Failed to reset password")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Password reset successfully", nil)
}
