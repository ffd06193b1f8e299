package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/educonnect/educonnect/internal/app/models/dto"
	"github.com/educonnect/educonnect/internal/app/services"
	"github.com/educonnect/educonnect/internal/middleware"
)

// AccountController handles self-service profile operations. The account
// identity always comes from the verified token, never from the body.
type AccountController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAccountController creates a new AccountController
func NewAccountController(authService services.AuthService, logger zerolog.Logger) *AccountController {
	return &AccountController{
		authService: authService,
		logger:      logger,
	}
}

// GetProfile returns the caller's account
// @Summary Get own profile
// @Description Returns the authenticated account
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Account} "Profile"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /profile [get]
func (c *AccountController) GetProfile(ctx *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	account, err := c.authService.GetProfile(ctx.Request.Context(), accountID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("accountID", accountID).Msg("Failed to load profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: account,
	})
}

// UpdateProfile applies a partial update to the caller's account
// @Summary Update own profile
// @Description Updates the allow-listed profile fields for the caller's role. Password and role cannot be changed here.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Account} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /profile [put]
func (c *AccountController) UpdateProfile(ctx *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	account, err := c.authService.UpdateProfile(ctx.Request.Context(), accountID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("accountID", accountID).Msg("Failed to update profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: account,
	})
}

// DeleteAccount removes the caller's account
// @Summary Delete own account
// @Description Permanently removes the authenticated account. The email becomes available for re-registration.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Account deleted"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /profile [delete]
func (c *AccountController) DeleteAccount(ctx *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.DeleteAccount(ctx.Request.Context(), accountID); err != nil {
		c.logger.Warn().Err(err).Int64("accountID", accountID).Msg("Failed to delete account")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Account deleted"},
	})
}
