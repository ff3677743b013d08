package main

// @title Rural Itinerary Service API
// @version 1.0
// @description Дашборд отзывов туристов о направлениях Шри-Ланки и генератор маршрутов по сельским активностям.
// @description
// @description Основные возможности:
// @description - Метрики и распределения отзывов по тональности, типу местности и району
// @description - Таблица активностей по категории, подтипам, бюджету и району
// @description - Частоты слов для облака слов
// @description - Многодневный маршрут с оценкой переездов через OpenRouteService

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	_ "github.com/rural-itinerary/docs"
	"github.com/rural-itinerary/internal/bootstrap"
	"github.com/rural-itinerary/internal/config"
	httpDelivery "github.com/rural-itinerary/internal/delivery/http"
	"github.com/rural-itinerary/internal/delivery/http/handler"
	"github.com/rural-itinerary/internal/infrastructure/openroute"
	"github.com/rural-itinerary/internal/pkg/logger"
	"github.com/rural-itinerary/internal/pkg/metrics"
	"github.com/rural-itinerary/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(&cfg.Log, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Rural Itinerary Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("dataset_source", cfg.Dataset.Source),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	// 3. Dataset source
	datasetRepo, closeSource, err := bootstrap.NewDatasetRepository(cfg, log)
	if err != nil {
		log.Fatal("Failed to open dataset source", zap.Error(err))
	}

	// 4. Load dataset once; без данных сервис отвечает 503
	loadCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	dataset, err := usecase.LoadDataset(loadCtx, datasetRepo, log)
	cancel()
	closeSource()
	if err != nil {
		log.Error("Dataset unavailable, serving health and errors only", zap.Error(err))
	}

	// 5. Cache: Redis если включён, иначе in-process
	cacheRepo, redisClient, err := bootstrap.NewCacheRepository(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
	}

	// 6. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// 7. External routing service
	routingClient := openroute.NewClient(&cfg.Routing, log)
	if cfg.Routing.APIKey == "" {
		log.Warn("ORS_API_KEY is empty, travel estimates will be unavailable")
	}

	// 8. Use cases
	annotator := usecase.NewRouteAnnotator(routingClient, cacheRepo, &cfg.Routing, &cfg.Cache, m, log)
	itineraryUC := usecase.NewItineraryUseCase(dataset, annotator, &cfg.Itinerary, m, log)
	dashboardUC := usecase.NewDashboardUseCase(dataset, cfg.Itinerary.MaxDays, log)

	log.Info("Use cases initialized")

	// 9. HTTP handlers and server
	server := httpDelivery.NewServer(
		cfg,
		log,
		dataset,
		registry,
		handler.NewDashboardHandler(dashboardUC, log),
		handler.NewItineraryHandler(itineraryUC, log),
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
