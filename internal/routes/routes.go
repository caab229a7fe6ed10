package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-crm-server/internal/config"
	"clinic-crm-server/internal/core"
	"clinic-crm-server/internal/handlers"
	"clinic-crm-server/internal/middleware"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	patientHandler := handlers.NewPatientHandler(db)
	consultationHandler := handlers.NewConsultationHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg)) // Apply JWT authentication middleware
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
		}

		// Staff directory: the sales workflow needs the doctor list for
		// assignment, so any authenticated role may read it
		userRoutes := private.Group("/users")
		{
			userRoutes.GET("/doctors", userHandler.GetDoctors)
		}

		// Patient routes
		patientRoutes := private.Group("/patients")
		{
			// Sales is the data-entry role; only it creates and assigns
			patientRoutes.POST("", middleware.RoleAuthMiddleware(core.RoleSales), patientHandler.CreatePatient)
			patientRoutes.PATCH("/:id/assign", middleware.RoleAuthMiddleware(core.RoleSales), patientHandler.AssignDoctor)

			// Reads are role-scoped inside the handler
			patientRoutes.GET("", patientHandler.GetPatients)
		}

		// Consultation routes
		consultationRoutes := private.Group("/consultations")
		{
			// Sales schedules; doctors record outcomes
			consultationRoutes.POST("", middleware.RoleAuthMiddleware(core.RoleSales), consultationHandler.ScheduleConsultation)
			consultationRoutes.PATCH("/:id", middleware.RoleAuthMiddleware(core.RoleDoctor), consultationHandler.UpdateConsultation)

			// Role-scoped reads
			consultationRoutes.GET("", consultationHandler.GetConsultations)
			consultationRoutes.GET("/latest", consultationHandler.GetLatestConsultations)

			// Gated privileged actions (scope + eligibility checked inside)
			consultationRoutes.GET("/:id/print", consultationHandler.GetPrintableSummary)
			consultationRoutes.GET("/:id/notify-link", consultationHandler.GetNotificationLink)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
