package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/educonnect/educonnect/internal/app/models/dto"
	"github.com/educonnect/educonnect/internal/app/services"
	"github.com/educonnect/educonnect/internal/middleware"
	"github.com/educonnect/educonnect/internal/pkg/apperrors"
)

// AdminController handles the admin side of the approval workflow
type AdminController struct {
	approvalService services.ApprovalService
	logger          zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(approvalService services.ApprovalService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		approvalService: approvalService,
		logger:          logger,
	}
}

// parseIDParam reads the :id path parameter
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid id parameter"))
		return 0, false
	}
	return id, true
}

// PendingStaff lists staff accounts awaiting approval
// @Summary List pending staff
// @Description Returns all staff accounts with pending status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Account} "Pending staff"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/pending-staff [get]
func (c *AdminController) PendingStaff(ctx *gin.Context) {
	staff, err := c.approvalService.PendingStaff(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list pending staff")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: staff,
	})
}

// ApproveStaff approves a pending staff account and assigns its scope
// @Summary Approve staff
// @Description Moves a staff account from pending to approved and assigns the year the staff member may verify
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff account ID"
// @Param request body dto.ApproveStaffRequest true "Assigned scope"
// @Success 200 {object} dto.APIResponse{data=models.Account} "Approved staff account"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Staff account not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/approve-staff/{id} [put]
func (c *AdminController) ApproveStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ApproveStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid approve-staff payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	staff, err := c.approvalService.ApproveStaff(ctx.Request.Context(), id, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("staffID", id).Msg("Failed to approve staff")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: staff,
	})
}

// RejectStaff rejects a pending staff account
// @Summary Reject staff
// @Description Moves a staff account from pending to rejected
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff account ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Staff rejected"
// @Failure 404 {object} dto.ErrorResponse "Staff account not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/reject-staff/{id} [put]
func (c *AdminController) RejectStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.approvalService.RejectStaff(ctx.Request.Context(), id); err != nil {
		c.logger.Warn().Err(err).Int64("staffID", id).Msg("Failed to reject staff")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Staff rejected"},
	})
}
