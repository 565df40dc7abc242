package routes

import (
	"fmt"

	"production-scheduler-backend/internal/api/handlers"
	"production-scheduler-backend/internal/api/middleware"
	"production-scheduler-backend/internal/auth"
	"production-scheduler-backend/internal/config"
	"production-scheduler-backend/internal/logger"
	"production-scheduler-backend/internal/repository"
	"production-scheduler-backend/internal/scheduling"
	"production-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint and overridden at build time
var Version = "dev"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()
	router.ContextWithFallback = true

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.SecureHeaders())

	// Initialize validator
	validate := validator.New()
	orderValidator := scheduling.NewOrderValidator(validate)

	schedulingConfig, err := cfg.SchedulingConfig()
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	calendarRepo := repository.NewCalendarRepository(db)
	dailyScheduleRepo := repository.NewDailyScheduleRepository(db)
	chartSessionRepo := repository.NewChartSessionRepository(db)

	// Initialize services
	chartSessionService := service.NewChartSessionService(chartSessionRepo, validate)
	scheduleService := service.NewEmployeeScheduleService(dailyScheduleRepo)
	calendarService := service.NewCalendarService(calendarRepo, cfg.Location())
	schedulerService := service.NewSchedulerService(calendarRepo, chartSessionService, orderValidator, service.SchedulerSettings{
		Config:   schedulingConfig,
		Machines: cfg.Machines(),
		Location: cfg.Location(),
	})

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("", cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("load auth config: %w", err)
	}
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		return nil, fmt.Errorf("initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)
	logger.Component("routes").Infof("Scheduling %d machines over %d days, token issuer %q",
		len(cfg.Machines()), schedulingConfig.HorizonDays, authConfig.Issuer)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	schedulerHandler := handlers.NewSchedulerHandler(schedulerService)
	chartSessionHandler := handlers.NewChartSessionHandler(chartSessionService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	viewer := auth.RequirePermission(
		scheduling.PermissionView,
		scheduling.PermissionCreate,
		scheduling.PermissionEdit,
		scheduling.PermissionRunBasic,
		scheduling.PermissionRunAdvanced,
	)
	editor := auth.RequirePermission(
		scheduling.PermissionCreate,
		scheduling.PermissionEdit,
	)

	{
		v1.GET("/schedule", viewer, scheduleHandler.GetEmployeeSchedule)

		chartData := v1.Group("/chart-data")
		{
			chartData.GET("", viewer, chartSessionHandler.GetChartData)
			chartData.POST("", editor, chartSessionHandler.StoreChartData)
			chartData.GET("/history", viewer, chartSessionHandler.ListChartHistory)
		}

		// Run access is decided per profile by the scheduler service
		scheduler := v1.Group("/scheduler")
		{
			scheduler.GET("/access", schedulerHandler.GetAccess)
			scheduler.POST("/run", schedulerHandler.Run)
		}

		calendarGroup := v1.Group("/calendar", viewer)
		{
			calendarGroup.GET("/resolve", calendarHandler.Resolve)
			calendarGroup.GET("/windows", calendarHandler.Windows)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, Version)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
