package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/educonnect/educonnect/internal/app/models/dto"
	"github.com/educonnect/educonnect/internal/app/services"
	"github.com/educonnect/educonnect/internal/middleware"
)

// StaffController handles the staff side of the approval workflow. All
// handlers run behind ApprovedStaffRequired, which stores the acting staff
// account on the context.
type StaffController struct {
	approvalService services.ApprovalService
	logger          zerolog.Logger
}

// NewStaffController creates a new StaffController
func NewStaffController(approvalService services.ApprovalService, logger zerolog.Logger) *StaffController {
	return &StaffController{
		approvalService: approvalService,
		logger:          logger,
	}
}

// PendingStudents lists unverified students in the staff member's scope
// @Summary List pending students
// @Description Returns unverified student accounts. Defaults to the caller's assigned year unless a year filter is given.
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param year query string false "Filter by year"
// @Param division query string false "Filter by division"
// @Success 200 {object} dto.APIResponse{data=[]models.Account} "Pending students"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Approved staff role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff/pending-students [get]
func (c *StaffController) PendingStudents(ctx *gin.Context) {
	actor, ok := middleware.AccountFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	year := ctx.Query("year")
	division := ctx.Query("division")

	students, err := c.approvalService.PendingStudents(ctx.Request.Context(), actor, year, division)
	if err != nil {
		c.logger.Error().Err(err).Int64("staffID", actor.ID).Msg("Failed to list pending students")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: students,
	})
}

// ApproveStudent verifies a student account
// @Summary Approve student
// @Description Marks a student account as verified
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student account ID"
// @Success 200 {object} dto.APIResponse{data=models.Account} "Approved student account"
// @Failure 404 {object} dto.ErrorResponse "Student account not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff/approve-student/{id} [put]
func (c *StaffController) ApproveStudent(ctx *gin.Context) {
	actor, ok := middleware.AccountFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.approvalService.ApproveStudent(ctx.Request.Context(), actor, id)
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", id).Msg("Failed to approve student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: student,
	})
}

// RejectStudent tags a student account as rejected
// @Summary Reject student
// @Description Tags a student account as rejected; it disappears from the pending listing
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student account ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student rejected"
// @Failure 404 {object} dto.ErrorResponse "Student account not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff/reject-student/{id} [put]
func (c *StaffController) RejectStudent(ctx *gin.Context) {
	actor, ok := middleware.AccountFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.approvalService.RejectStudent(ctx.Request.Context(), actor, id); err != nil {
		c.logger.Warn().Err(err).Int64("studentID", id).Msg("Failed to reject student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Student rejected"},
	})
}
