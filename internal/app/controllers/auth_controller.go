// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/educonnect/educonnect/internal/app/models/dto"
	"github.com/educonnect/educonnect/internal/app/services"
	"github.com/educonnect/educonnect/internal/middleware"
)

// AuthController handles registration and login
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles account registration
// @Summary Register a new account
// @Description Creates a new student, alumni or staff account and returns a session token. Staff accounts start pending until an admin approves them; students start unverified.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account registration information"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or missing role fields"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.logger.Info().
		Str("email", req.Email).
		Str("role", string(req.Role)).
		Msg("Registration request received")

	authResponse, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Failed to register account")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("email", req.Email).
		Int64("accountID", authResponse.Account.ID).
		Msg("Account registered successfully")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: authResponse,
	})
}

// Login handles account login
// @Summary Account login
// @Description Authenticates an account and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	authResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("email", req.Email).
		Msg("Account logged in successfully")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: authResponse,
	})
}
