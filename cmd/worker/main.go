package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rural-itinerary/internal/bootstrap"
	"github.com/rural-itinerary/internal/config"
	"github.com/rural-itinerary/internal/infrastructure/openroute"
	"github.com/rural-itinerary/internal/pkg/logger"
	"github.com/rural-itinerary/internal/pkg/metrics"
	"github.com/rural-itinerary/internal/repository/cache"
	redisRepo "github.com/rural-itinerary/internal/repository/redis"
	"github.com/rural-itinerary/internal/usecase"
	"github.com/rural-itinerary/internal/worker"
	"github.com/rural-itinerary/internal/worker/itinerary"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(&cfg.Log, "worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Itinerary Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_batch", cfg.Worker.MaxBatch),
		zap.String("dataset_source", cfg.Dataset.Source))

	// 3. Dataset: воркер без данных бесполезен
	datasetRepo, closeSource, err := bootstrap.NewDatasetRepository(cfg, log)
	if err != nil {
		log.Fatal("Failed to open dataset source", zap.Error(err))
	}

	loadCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	dataset, err := usecase.LoadDataset(loadCtx, datasetRepo, log)
	cancel()
	closeSource()
	if err != nil {
		log.Fatal("Failed to load dataset", zap.Error(err))
	}

	// 4. Redis обязателен: стримы и кеш геокодинга/маршрутов
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	// 5. Use cases
	m := metrics.NewNop()
	annotator := usecase.NewRouteAnnotator(
		openroute.NewClient(&cfg.Routing, log),
		cacheRepo,
		&cfg.Routing,
		&cfg.Cache,
		m,
		log,
	)
	itineraryUC := usecase.NewItineraryUseCase(dataset, annotator, &cfg.Itinerary, m, log)

	// 6. Workers
	manager := worker.NewWorkerManager(worker.DefaultShutdownTimeout, log)
	manager.Register(itinerary.NewGenerateWorker(
		streamRepo,
		itineraryUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxBatch,
		log,
	))

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	log.Info("Worker started successfully")

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down workers gracefully...")

	if err := manager.Stop(); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}
	stop()

	log.Info("Worker stopped successfully")
}
