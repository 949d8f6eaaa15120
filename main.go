package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gideon1107/cafe-and-wifi-api/config"
	"github.com/Gideon1107/cafe-and-wifi-api/controller"
	"github.com/Gideon1107/cafe-and-wifi-api/database"
	"github.com/Gideon1107/cafe-and-wifi-api/observability"
	"github.com/Gideon1107/cafe-and-wifi-api/repository"
	"github.com/Gideon1107/cafe-and-wifi-api/route"
	"github.com/Gideon1107/cafe-and-wifi-api/utils"
)

func main() {
	cfg := config.Load()

	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger.Info("running in debug mode")
	}

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}
	logger.Info("database ready")

	repo := repository.NewCafeRepository(db)
	ctl := controller.NewCafeController(repo, cfg.APIKey, logger)
	metrics := observability.NewHTTPMetrics()

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.RequestID())
	router.Use(utils.RequestLogger(logger))
	router.Use(metrics.Middleware())

	// Configure CORS
	origins := []string{"http://localhost:3000"}
	if cfg.AllowedOrigins != "" {
		origins = append(origins, cfg.AllowedOrigins)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.LoadHTMLGlob("templates/*")

	// Setup routes
	route.CafeRoutes(router, ctl, metrics)
	logger.Info("routes configured")

	// Start server
	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
