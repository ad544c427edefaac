package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kora_backend/internal/config"
	"kora_backend/internal/database"
	"kora_backend/internal/handlers"
	"kora_backend/internal/logger"
	"kora_backend/internal/middleware"
	"kora_backend/internal/notifier"
	"kora_backend/internal/repositories"
	"kora_backend/internal/routes"
	"kora_backend/internal/services"
	"kora_backend/internal/storage"
	"kora_backend/internal/workers"
)

// Run wires the whole application and serves until SIGINT/SIGTERM.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.RunMigrations(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	otpWorker := workers.NewOTPWorker(gormDB, repositories.NewUserRepository())
	go otpWorker.Run(workerCtx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    address,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("Server starting", "address", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown signal received")

	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Database close error", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter builds the fully wired engine. Tests call it directly with their
// own config and DB handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	var notify notifier.Provider
	if cfg.Novu.APIKey != "" {
		notify = notifier.NewNovuProvider(cfg.Novu.APIKey, cfg.Novu.BaseURL)
		logger.Info("Novu notifier initialized")
	} else {
		notify = notifier.NewNoopProvider()
		logger.Warn("No Novu API key configured, notifications are logged only")
	}

	serviceContainer := initializeServices(cfg, storageInstance, notify)
	appHandlers := handlers.NewAppHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage, notify notifier.Provider) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	propertyTypeRepo := repositories.NewPropertyTypeRepository()
	amenityRepo := repositories.NewAmenityRepository()
	listingRepo := repositories.NewListingRepository()
	reviewRepo := repositories.NewReviewRepository()
	favouritesRepo := repositories.NewFavouritesRepository()
	transactionRepo := repositories.NewTransactionRepository()
	attachmentRepo := repositories.NewAttachmentRepository()

	mediaService := services.NewMediaService(storageInstance, attachmentRepo)
	authService := services.NewAuthService(userRepo, notify, cfg.URLs.Backend)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         services.NewUserService(userRepo),
		ProfileService:      services.NewProfileService(profileRepo, userRepo, propertyTypeRepo, authService),
		PropertyTypeService: services.NewPropertyTypeService(propertyTypeRepo),
		AmenityService:      services.NewAmenityService(amenityRepo, mediaService),
		ListingService:      services.NewListingService(listingRepo, amenityRepo, propertyTypeRepo, mediaService),
		ReviewService:       services.NewReviewService(reviewRepo, userRepo, listingRepo),
		FavouritesService:   services.NewFavouritesService(favouritesRepo, listingRepo),
		TransactionService:  services.NewTransactionService(transactionRepo, userRepo, listingRepo, notify),
		MediaService:        mediaService,
	}
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	if cfg.Storage.Type == "local" {
		ginRouter.Static("/files", cfg.Storage.BasePath)
	}

	return ginRouter
}
