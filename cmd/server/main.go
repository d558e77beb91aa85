package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketing_cms/internal/config"
	"marketing_cms/internal/handler"
	"marketing_cms/internal/logger"
	"marketing_cms/internal/middleware"
	"marketing_cms/internal/repository"
	"marketing_cms/internal/service"
	"marketing_cms/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init(cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatal().Err(err).Msg("Failed to auto-migrate database")
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	serviceRepo := repository.NewServiceRepository(dbPool)
	portfolioRepo := repository.NewPortfolioRepository(dbPool)
	contactRepo := repository.NewContactRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	contentService := service.NewContentService(serviceRepo, portfolioRepo)
	contactService := service.NewContactService(contactRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	serviceHandler := handler.NewServiceHandler(contentService)
	portfolioHandler := handler.NewPortfolioHandler(contentService)
	contactHandler := handler.NewContactHandler(contactService)

	// --- Setup Gin Router ---
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		body := gin.H{"message": "Internal server error"}
		if !cfg.IsProduction() {
			body["detail"] = recovered
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	}))
	router.Use(middleware.CORSMiddleware(cfg))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil, authService)
	adminRoleMW := middleware.AdminMiddleware()

	// --- Register Routes ---
	apiGroup := router.Group("/api")

	publicGroup := apiGroup.Group("/public")
	adminGroup := apiGroup.Group("/admin")
	adminGroup.Use(jwtAuthMW)
	adminGroup.Use(adminRoleMW)

	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW)
	serviceHandler.RegisterServiceRoutes(publicGroup, adminGroup)
	portfolioHandler.RegisterPortfolioRoutes(publicGroup, adminGroup)
	contactHandler.RegisterContactRoutes(publicGroup, adminGroup)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
