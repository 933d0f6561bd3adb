package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"

	"github.com/acmebank/acmebank/internal/core/services"
	"github.com/acmebank/acmebank/internal/handlers"
	"github.com/acmebank/acmebank/internal/middleware"
	"github.com/acmebank/acmebank/internal/platform/config"
	"github.com/acmebank/acmebank/internal/platform/storage/kvstore"
	kvrepo "github.com/acmebank/acmebank/internal/repositories/kv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := kvstore.Open(afero.NewOsFs(), cfg.StorePath)
	if err != nil {
		logger.Error("failed to open store", slog.String("path", cfg.StorePath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := kvrepo.NewRepositoryProvider(store)
	svcContainer := services.NewServiceContainer(cfg, repos)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	handlers.RegisterRoutes(r, cfg, svcContainer)

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
