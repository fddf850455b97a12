package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/lakshyaag/restaurant-recommender-mvp/internal/category"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/config"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/handler"
	middlewarepkg "github.com/lakshyaag/restaurant-recommender-mvp/internal/middleware"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/router"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	categories, err := category.Restaurants()
	if err != nil {
		logger.Fatal("failed to load category taxonomy", zap.Error(err))
	}

	model, err := service.NewOpenAIModel(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		logger.Fatal("failed to create language model", zap.Error(err))
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}
	yelpClient := service.NewYelpClient(httpClient, cfg.YelpBaseURL, cfg.YelpAPIKey,
		service.WithDebugDump(cfg.YelpDumpPath),
		service.WithLogger(logger),
	)

	searchService := service.NewSearchService(yelpClient, service.NewFormatter(), cfg.Defaults)
	profileService := service.NewProfileService(model, categories, cfg.Defaults, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(logger))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, middlewarepkg.HeaderRequestID},
		ExposeHeaders:    []string{middlewarepkg.HeaderRequestID},
		AllowCredentials: true,
	}))

	router.Register(e, cfg, router.Handlers{
		Restaurants:   handler.NewRestaurantsHandler(searchService),
		ClientProfile: handler.NewClientProfileHandler(profileService),
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("prefix", cfg.APIPrefix))
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
