package app

import (
	"fmt"

	"chefbazaar_backend/database"
	"chefbazaar_backend/internal/config"
	"chefbazaar_backend/internal/email"
	"chefbazaar_backend/internal/handlers"
	"chefbazaar_backend/internal/logger"
	"chefbazaar_backend/internal/middleware"
	"chefbazaar_backend/internal/repositories"
	"chefbazaar_backend/internal/routes"
	"chefbazaar_backend/internal/services"
	"chefbazaar_backend/internal/validator"
	"chefbazaar_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
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

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// 1. WebSocket fan-out first: the order service publishes into it.
	wsManager := ws.NewWebSocketManager()
	go wsManager.Run()
	wsHandler := ws.NewWebSocketHandler(wsManager)

	// 2. Services
	serviceContainer := initializeServices(cfg, wsManager)

	// 3. Handlers
	appHandlers := initializeHandlers(serviceContainer)

	// 4. Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter
}

func initializeServices(cfg *config.Config, notifier services.Notifier) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewSMTPProvider(cfg)
		logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailService = &email.NoopProvider{}
		logger.Warn("SMTP is not configured. Decision emails are disabled.")
	}

	userRepo := repositories.NewUserRepository()
	requestRepo := repositories.NewRequestRepository()
	mealRepo := repositories.NewMealRepository()
	orderRepo := repositories.NewOrderRepository()
	paymentRepo := repositories.NewPaymentRepository()
	reviewRepo := repositories.NewReviewRepository()
	favoriteRepo := repositories.NewFavoriteRepository()

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo),
		UserService:     services.NewUserService(userRepo),
		RequestService:  services.NewRequestService(requestRepo, userRepo, emailService),
		MealService:     services.NewMealService(mealRepo),
		OrderService:    services.NewOrderService(orderRepo, mealRepo, notifier),
		PaymentService:  services.NewPaymentService(paymentRepo, orderRepo),
		ReviewService:   services.NewReviewService(reviewRepo),
		FavoriteService: services.NewFavoriteService(favoriteRepo),
		StatsService:    services.NewStatsService(userRepo, orderRepo, paymentRepo),
		EmailService:    emailService,
		Notifier:        notifier,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:     handlers.NewUserHandler(baseHandler, container.UserService),
		RequestHandler:  handlers.NewRequestHandler(baseHandler, container.RequestService),
		MealHandler:     handlers.NewMealHandler(baseHandler, container.MealService),
		OrderHandler:    handlers.NewOrderHandler(baseHandler, container.OrderService),
		PaymentHandler:  handlers.NewPaymentHandler(baseHandler, container.PaymentService),
		ReviewHandler:   handlers.NewReviewHandler(baseHandler, container.ReviewService),
		FavoriteHandler: handlers.NewFavoriteHandler(baseHandler, container.FavoriteService),
		StatsHandler:    handlers.NewStatsHandler(baseHandler, container.StatsService),
		HealthHandler:   handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Client.URL))
	router.Use(middleware.DBMiddleware(db))
	return router
}
