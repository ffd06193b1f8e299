package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/educonnect/educonnect/internal/app/controllers"
	"github.com/educonnect/educonnect/internal/app/models"
	"github.com/educonnect/educonnect/internal/app/models/dto"
	"github.com/educonnect/educonnect/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	accountController *controllers.AccountController,
	adminController *controllers.AdminController,
	staffController *controllers.StaffController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Self-service profile; identity comes from the token
	profile := authenticated.Group("/profile")
	{
		profile.GET("", accountController.GetProfile)
		profile.PUT("", accountController.UpdateProfile)
		profile.DELETE("", accountController.DeleteAccount)
	}

	// Admin-only staff approval routes
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		admin.GET("/pending-staff", adminController.PendingStaff)
		admin.PUT("/approve-staff/:id", adminController.ApproveStaff)
		admin.PUT("/reject-staff/:id", adminController.RejectStaff)
	}

	// Staff routes; only approved staff may verify students
	staff := authenticated.Group("/staff")
	staff.Use(authMiddleware.RoleRequired(string(models.RoleStaff)))
	staff.Use(authMiddleware.ApprovedStaffRequired())
	{
		staff.GET("/pending-students", staffController.PendingStudents)
		staff.PUT("/approve-student/:id", staffController.ApproveStudent)
		staff.PUT("/reject-student/:id", staffController.RejectStudent)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
