package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shs-edu/campus-portal/internal/app/controllers"
	"github.com/shs-edu/campus-portal/internal/app/models"
	"github.com/shs-edu/campus-portal/internal/app/models/dto"
	"github.com/shs-edu/campus-portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	noticeController *controllers.NoticeController,
	materialController *controllers.MaterialController,
	contactController *controllers.ContactController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/me", authMiddleware.RequireAuth(), authController.Me)
	}

	// --- Notice routes ---
	notices := v1.Group("/notices")
	{
		notices.GET("", noticeController.List)

		// Posting and curation is restricted to staff
		noticesStaff := notices.Group("")
		noticesStaff.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoles(models.RoleFaculty, models.RoleAdmin))
		{
			noticesStaff.POST("", noticeController.Create)
			noticesStaff.PUT("/:id", noticeController.Update)
			noticesStaff.DELETE("/:id", noticeController.Delete)
		}
	}

	// --- Material routes ---
	materials := v1.Group("/materials")
	{
		materials.GET("", materialController.List)
		materials.POST("/:id/download", materialController.Download)

		// Any authenticated user may upload; approval is derived from role
		materials.POST("", authMiddleware.RequireAuth(), materialController.Create)
	}

	// --- Contact routes ---
	contacts := v1.Group("/contacts")
	{
		contacts.POST("", contactController.Create)

		contactsAdmin := contacts.Group("")
		contactsAdmin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoles(models.RoleAdmin))
		{
			contactsAdmin.GET("", contactController.List)
			contactsAdmin.PATCH("/:id", contactController.UpdateStatus)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
