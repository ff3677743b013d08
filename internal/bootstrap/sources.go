// Package bootstrap собирает зависимости, общие для API и воркера.
package bootstrap

import (
	"time"

	"github.com/rural-itinerary/internal/config"
	"github.com/rural-itinerary/internal/domain/repository"
	"github.com/rural-itinerary/internal/repository/cache"
	"github.com/rural-itinerary/internal/repository/csvfile"
	"github.com/rural-itinerary/internal/repository/memcache"
	"github.com/rural-itinerary/internal/repository/postgres"
	"go.uber.org/zap"
)

const memCacheCleanupInterval = 10 * time.Minute

// NewDatasetRepository - CSV файлы или PostgreSQL по DATASET_SOURCE.
// Возвращаемую функцию закрытия нужно вызвать после загрузки данных.
func NewDatasetRepository(cfg *config.Config, log *zap.Logger) (repository.DatasetRepository, func(), error) {
	if cfg.Dataset.Source != config.DatasetSourcePostgres {
		return csvfile.NewDatasetRepository(cfg.Dataset.ReviewsPath, cfg.Dataset.ActivitiesPath, log), func() {}, nil
	}

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}
	return postgres.NewDatasetRepository(db), closeDB, nil
}

// NewCacheRepository - Redis, если REDIS_ENABLED, иначе кеш в памяти процесса.
// Клиент Redis возвращается только в первом случае.
func NewCacheRepository(cfg *config.Config, log *zap.Logger) (repository.CacheRepository, *cache.Redis, error) {
	if !cfg.Redis.Enabled {
		log.Info("Redis disabled, using in-process cache")
		return memcache.NewCacheRepository(cfg.Cache.RouteTTL, memCacheCleanupInterval, log), nil, nil
	}

	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	return cache.NewCacheRepository(redisClient), redisClient, nil
}
