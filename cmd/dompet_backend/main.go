package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/adapters/storage/kvfile"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/services"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/handlers"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/middleware"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Dompet Backend API
// @version 1.0
// @description Personal finance tracker backend: wallets, transactions and loans.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the collection store backing all repositories
	store, err := kvfile.NewStore(afero.NewOsFs(), cfg.DataDir)
	if err != nil {
		logger.Error("Failed to initialize data store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Data store ready", slog.String("dir", cfg.DataDir))

	repos := kvfile.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, metrics, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), limiter.Rate{
		Period: time.Minute,
		Limit:  cfg.RateLimitPerMinute,
	})))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
