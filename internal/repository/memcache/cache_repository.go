package memcache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rural-itinerary/internal/domain/repository"
	"go.uber.org/zap"
)

type cacheRepository struct {
	store  *gocache.Cache
	logger *zap.Logger
}

// NewCacheRepository - кеш в памяти процесса, когда Redis выключен.
// defaultTTL используется для Set с ttl <= 0.
func NewCacheRepository(defaultTTL, cleanupInterval time.Duration, logger *zap.Logger) repository.CacheRepository {
	logger.Info("Using in-process cache",
		zap.Duration("default_ttl", defaultTTL),
		zap.Duration("cleanup_interval", cleanupInterval))

	return &cacheRepository{
		store:  gocache.New(defaultTTL, cleanupInterval),
		logger: logger,
	}
}

func (r *cacheRepository) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := r.store.Get(key)
	if !ok {
		return nil, nil
	}
	data, ok := v.([]byte)
	if !ok {
		r.store.Delete(key)
		return nil, nil
	}
	return data, nil
}

func (r *cacheRepository) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	// копия, чтобы вызывающий мог переиспользовать буфер
	buf := make([]byte, len(value))
	copy(buf, value)
	r.store.Set(key, buf, ttl)
	return nil
}

func (r *cacheRepository) Delete(_ context.Context, key string) error {
	r.store.Delete(key)
	return nil
}

func (r *cacheRepository) Exists(_ context.Context, key string) (bool, error) {
	_, ok := r.store.Get(key)
	return ok, nil
}
