package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rural-itinerary/internal/domain/repository"
	"go.uber.org/zap"
)

// KeyPrefix - пространство имён сервиса в общей базе Redis
const KeyPrefix = "itinerary:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCacheRepository - общий для API и воркера кеш геокодинга и маршрутов
func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: r.client,
		logger: r.logger,
	}
}

func key(k string) string {
	return KeyPrefix + k
}

// Get - промах возвращает (nil, nil)
func (r *cacheRepository) Get(ctx context.Context, k string) ([]byte, error) {
	val, err := r.client.Get(ctx, key(k)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, nil
	case err != nil:
		r.logger.Warn("Redis cache read failed", zap.String("key", k), zap.Error(err))
		return nil, fmt.Errorf("cache get %s: %w", k, err)
	}
	return val, nil
}

// Set - ttl <= 0 в Redis означает значение без срока
func (r *cacheRepository) Set(ctx context.Context, k string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, key(k), value, ttl).Err(); err != nil {
		r.logger.Warn("Redis cache write failed", zap.String("key", k), zap.Error(err))
		return fmt.Errorf("cache set %s: %w", k, err)
	}
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, k string) error {
	if err := r.client.Del(ctx, key(k)).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", k, err)
	}
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, k string) (bool, error) {
	n, err := r.client.Exists(ctx, key(k)).Result()
	if err != nil {
		return false, fmt.Errorf("cache exists %s: %w", k, err)
	}
	return n == 1, nil
}
