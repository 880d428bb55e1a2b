package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/services"
	"github.com/emrek/campushub/internal/middleware"
	"github.com/emrek/campushub/internal/pkg/auth"
)

// AuthController handles registration and login
type AuthController struct {
	authService services.AuthService
	jwtService  *auth.JWTService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, jwtService *auth.JWTService) *AuthController {
	return &AuthController{
		authService: authService,
		jwtService:  jwtService,
	}
}

// currentUserID returns the user id placed in the context by the JWT
// middleware.
func currentUserID(ctx *gin.Context) string {
	id, _ := ctx.Get("userID")
	s, _ := id.(string)
	return s
}

func bindError(ctx *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
		WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// Register handles new account creation and returns a token for the session
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, expiresIn, err := c.jwtService.GenerateToken(user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.NewUserResponse(user),
	}
	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(response, "Account created successfully"))
}

// Login handles credential verification and token issuance
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	user, err := c.authService.Authenticate(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, expiresIn, err := c.jwtService.GenerateToken(user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.NewUserResponse(user),
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(response, "Login successful"))
}

// Me returns the authenticated user's profile
func (c *AuthController) Me(ctx *gin.Context) {
	user, err := c.authService.GetUser(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(dto.NewUserResponse(user), ""))
}
