package app

import (
	"fmt"

	"worknest_backend/internal/auth"
	"worknest_backend/internal/config"
	"worknest_backend/internal/email"
	"worknest_backend/internal/handlers"
	"worknest_backend/internal/logger"
	"worknest_backend/internal/middleware"
	"worknest_backend/internal/models"
	"worknest_backend/internal/repositories"
	"worknest_backend/internal/routes"
	"worknest_backend/internal/services"
	"worknest_backend/internal/storage"
	"worknest_backend/internal/validator"
	"worknest_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
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

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Interview{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	tokens := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)

	wsManager := ws.NewWebSocketManager()
	go wsManager.Run()
	wsHandler := ws.NewWebSocketHandler(wsManager, tokens)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance, tokens, wsManager)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter()

	authMW := middleware.AuthMiddleware(tokens)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler, authMW)

	return ginRouter
}

func initializeServices(
	cfg *config.Config,
	gormDB *gorm.DB,
	storageInstance storage.Storage,
	tokens *auth.TokenIssuer,
	notifier services.Notifier,
) *services.ServiceContainer {
	emailProvider := email.NewSMTPProvider(&email.Config{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})

	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	interviewRepo := repositories.NewInterviewRepository(gormDB)

	uploadService := services.NewUploadService(storageInstance, services.UploadConfig{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	})
	userService := services.NewUserService(userRepo, uploadService)
	authService := services.NewAuthService(userRepo, emailProvider, tokens, userService, cfg.FrontendURL)
	jobService := services.NewJobService(jobRepo, uploadService)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, uploadService)
	interviewService := services.NewInterviewService(interviewRepo, applicationRepo, notifier)

	return &services.ServiceContainer{
		AuthService:        authService,
		UserService:        userService,
		JobService:         jobService,
		ApplicationService: applicationService,
		InterviewService:   interviewService,
		UploadService:      uploadService,
		EmailProvider:      emailProvider,
	}
}

func initializeHandlers(container *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:        handlers.NewUserHandler(baseHandler, container.UserService),
		JobHandler:         handlers.NewJobHandler(baseHandler, container.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		InterviewHandler:   handlers.NewInterviewHandler(baseHandler, container.InterviewService),
		FileHandler:        handlers.NewFileHandler(baseHandler, storageInstance),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
