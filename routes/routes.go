package routes

import (
	"CareLink/cache"
	"CareLink/config"
	"CareLink/controllers"
	"CareLink/handlers"
	"CareLink/middlewares"
	"CareLink/repositories"
	"CareLink/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply gateway token validation to all routes
	router.Use(middlewares.ValidateGatewayToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Gateway-Token"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, cache)
	profileRepo := repositories.NewDoctorProfileRepository(db, cache)
	linkRepo := repositories.NewLinkRepository(db)
	migrationRepo := repositories.NewMigrationRepository(db, cache)

	healthLogRepo := repositories.NewHealthLogRepository(db, cache)
	medicationRepo := repositories.NewMedicationRepository(db, cache)
	reportRepo := repositories.NewReportRepository(db, cache)
	dietPlanRepo := repositories.NewDietPlanRepository(db, cache)
	medicalHistoryRepo := repositories.NewMedicalHistoryRepository(db, cache)
	consultationRepo := repositories.NewConsultationRepository(db, cache)

	// The authorizer is shared by every record service so that link lookups
	// and permission checks behave identically across categories.
	authorizer := services.NewAuthorizer(linkRepo)

	// Initialize services and handlers
	authHandler := handlers.NewAuthHandler(services.NewAuthService(userRepo, profileRepo))
	patientHandler := handlers.NewPatientHandler(services.NewPatientService(userRepo, linkRepo))
	linkHandler := handlers.NewLinkHandler(services.NewLinkService(linkRepo, userRepo, profileRepo))
	claimHandler := handlers.NewClaimHandler(services.NewMigrationService(linkRepo, userRepo, migrationRepo))

	healthLogHandler := handlers.NewHealthLogHandler(services.NewHealthLogService(healthLogRepo, authorizer))
	medicationHandler := handlers.NewMedicationHandler(services.NewMedicationService(medicationRepo, authorizer))
	reportHandler := handlers.NewReportHandler(services.NewReportService(reportRepo, authorizer))
	dietPlanHandler := handlers.NewDietPlanHandler(services.NewDietPlanService(dietPlanRepo, authorizer))
	medicalHistoryHandler := handlers.NewMedicalHistoryHandler(services.NewMedicalHistoryService(medicalHistoryRepo, authorizer))
	consultationHandler := handlers.NewConsultationHandler(services.NewConsultationService(consultationRepo, authorizer))

	// Register routes
	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupLinkRoutes(router, patientHandler, linkHandler, claimHandler)

	controllers.SetupRecordRoutes(
		router,
		healthLogHandler,
		medicationHandler,
		reportHandler,
		dietPlanHandler,
		medicalHistoryHandler,
		consultationHandler,
	)

	controllers.SetupRootRoute(router)

	return router
}
