package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-appointment/config"
	deliveryHttp "hospital-appointment/internal/delivery/http"
	"hospital-appointment/internal/delivery/http/handler"
	"hospital-appointment/internal/delivery/http/middleware"
	"hospital-appointment/internal/infrastructure/cache"
	"hospital-appointment/internal/infrastructure/database"
	"hospital-appointment/internal/observability/metrics"
	"hospital-appointment/internal/repository"
	"hospital-appointment/internal/service"
	"hospital-appointment/internal/usecase"
	"hospital-appointment/pkg/jwt"
	"hospital-appointment/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
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
	logrus.Infof("Configuration loaded successfully (timezone %s)", cfg.App.Timezone)

	// Apply schema migrations when requested
	if cfg.DB.MigrateOnStart {
		if err := database.MigrateUp(cfg.DB); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

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
		app.Close()
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

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize metrics
	availabilityMetrics := metrics.NewAvailabilityMetrics(prometheus.DefaultRegisterer)
	bookingMetrics := metrics.NewBookingMetrics(prometheus.DefaultRegisterer)

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	doctorScheduleRepo := repository.NewDoctorScheduleRepository()
	workingHourRepo := repository.NewWorkingHourRepository()
	availabilityBlockRepo := repository.NewAvailabilityBlockRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	availabilityService := service.NewAvailabilityService(db, log, doctorScheduleRepo, availabilityMetrics, cfg.Availability)
	reservationService := service.NewSlotReservationService(redisClient, log, cfg.Booking.SlotHoldTTL)
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo)
	availabilityUsecase := usecase.NewAvailabilityUsecase(log, availabilityService, cfg.Availability)
	patientAppointmentUsecase := usecase.NewPatientAppointmentUsecase(db, log, patientRepo, doctorRepo, appointmentRepo,
		availabilityService, reservationService, auditService, bookingMetrics, cfg.Availability)
	doctorAppointmentUsecase := usecase.NewDoctorAppointmentUsecase(db, log, doctorRepo, appointmentRepo, auditService, bookingMetrics)
	workingHourUsecase := usecase.NewWorkingHourUsecase(db, log, doctorRepo, workingHourRepo, auditService)
	availabilityBlockUsecase := usecase.NewAvailabilityBlockUsecase(db, log, doctorRepo, availabilityBlockRepo, auditService, cfg.Availability)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	patientAppointmentHandler := handler.NewPatientAppointmentHandler(patientAppointmentUsecase, customValidator)
	doctorAppointmentHandler := handler.NewDoctorAppointmentHandler(doctorAppointmentUsecase)
	workingHourHandler := handler.NewWorkingHourHandler(workingHourUsecase, customValidator)
	availabilityBlockHandler := handler.NewAvailabilityBlockHandler(availabilityBlockUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowedOrigins...)

	// Initialize router
	router := deliveryHttp.NewRouter(
		doctorHandler,
		availabilityHandler,
		patientAppointmentHandler,
		doctorAppointmentHandler,
		workingHourHandler,
		availabilityBlockHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
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
