package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"temple-booking/config"
	deliveryHttp "temple-booking/internal/delivery/http"
	"temple-booking/internal/delivery/http/handler"
	"temple-booking/internal/delivery/http/middleware"
	"temple-booking/internal/infrastructure/kvstore"
	"temple-booking/internal/repository"
	"temple-booking/internal/service"
	"temple-booking/internal/usecase"
	"temple-booking/pkg/jwt"
	"temple-booking/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Store       kvstore.Store
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

	// Initialize ledger store backend
	store, redisClient, err := newStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ledger store: %w", err)
	}
	app.Store = store
	app.RedisClient = redisClient
	logrus.Infof("Ledger store initialized: backend=%s", cfg.Store.Backend)

	// Initialize all layers
	server := initializeServer(cfg, store)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// newStore builds the persistence backend named in the configuration.
func newStore(cfg *config.Config) (kvstore.Store, *redis.Client, error) {
	switch cfg.Store.Backend {
	case "redis":
		client, err := kvstore.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return kvstore.NewRedisStore(client), client, nil
	case "file":
		store, err := kvstore.NewFileStore(cfg.Store.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	case "memory":
		return kvstore.NewMemoryStore(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, store kvstore.Store) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repository
	ledgerRepo := repository.NewLedgerRepository(store, log)

	// Initialize services
	statsService := service.NewStatsService(ledgerRepo, log)
	paymentService := service.NewPaymentService(cfg.Payment.GatewayDelay, log)
	ticketService := service.NewTicketService()
	exportService := service.NewTicketExportService(time.Second, log)

	// Initialize usecases
	bookingUsecase := usecase.NewBookingUsecase(log, ledgerRepo, statsService, paymentService, ticketService, exportService)
	donationUsecase := usecase.NewDonationUsecase(log, paymentService)
	authUsecase := usecase.NewAuthUsecase(cfg.Admin, jwtService, log)

	// Initialize handlers
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	donationHandler := handler.NewDonationHandler(donationUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(bookingUsecase, customValidator)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(bookingHandler, donationHandler, adminHandler, authHandler, authMiddleware, corsMiddleware)
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

// Close closes backend connections
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
