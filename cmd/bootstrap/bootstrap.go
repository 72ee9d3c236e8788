package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"work-program-scheduler/config"
	deliveryHttp "work-program-scheduler/internal/delivery/http"
	"work-program-scheduler/internal/delivery/http/handler"
	"work-program-scheduler/internal/delivery/http/middleware"
	"work-program-scheduler/internal/infrastructure/cache"
	"work-program-scheduler/internal/infrastructure/database"
	"work-program-scheduler/internal/repository"
	"work-program-scheduler/internal/service"
	"work-program-scheduler/internal/usecase"
	"work-program-scheduler/pkg/jwt"
	"work-program-scheduler/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	residentRepo := repository.NewResidentRepository()
	qualificationRepo := repository.NewQualificationRepository()
	grantRepo := repository.NewResidentQualificationRepository()
	availabilityRepo := repository.NewAvailabilityRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	departmentRepo := repository.NewDepartmentRepository()
	shiftRepo := repository.NewShiftRepository()
	workLimitRepo := repository.NewWorkLimitRepository()
	periodRepo := repository.NewSchedulePeriodRepository()
	assignmentRepo := repository.NewShiftAssignmentRepository()
	conflictRepo := repository.NewScheduleConflictRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	seriesService := service.NewAppointmentSeriesService(log)
	lockService := service.NewPeriodLockService(redisClient, log, cfg.Scheduler.GenerationLockTTL)
	generationStore := repository.NewGenerationStore(db, periodRepo, shiftRepo, residentRepo, workLimitRepo, assignmentRepo, conflictRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient, auditService)
	residentUsecase := usecase.NewResidentUsecase(db, log, residentRepo, qualificationRepo, grantRepo, availabilityRepo, appointmentRepo, auditService)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, departmentRepo, qualificationRepo, shiftRepo)
	workLimitUsecase := usecase.NewWorkLimitUsecase(db, log, workLimitRepo, residentRepo, auditService)
	periodUsecase := usecase.NewSchedulePeriodUsecase(db, log, periodRepo, assignmentRepo, conflictRepo, auditService)
	generationUsecase := usecase.NewScheduleGenerationUsecase(db, log, generationStore, lockService, seriesService, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	residentHandler := handler.NewResidentHandler(residentUsecase, customValidator)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase)
	workLimitHandler := handler.NewWorkLimitHandler(workLimitUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(periodUsecase, generationUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, residentHandler, catalogHandler, workLimitHandler, scheduleHandler, auditLogHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
