package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/services"
	"github.com/emrek/campushub/internal/middleware"
)

// UserController handles the user directory
type UserController struct {
	authService services.AuthService
}

// NewUserController creates a new UserController
func NewUserController(authService services.AuthService) *UserController {
	return &UserController{
		authService: authService,
	}
}

// GetUsers handles retrieving the user directory with optional search
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.authService.ListUsers(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(responses, ""))
}

// GetUserByID handles retrieving a single user profile
func (c *UserController) GetUserByID(ctx *gin.Context) {
	user, err := c.authService.GetUser(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(dto.NewUserResponse(user), ""))
}
