package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rural-itinerary/internal/config"
	"go.uber.org/zap"
)

const (
	clientName  = "rural-itinerary"
	dialTimeout = 5 * time.Second
	// readTimeout больше блокировки XREADGROUP в стрим-репозитории
	readTimeout = 3 * time.Second
)

// Redis - одно подключение на процесс: кеш геокодинга/маршрутов и стримы воркера
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis подключается и проверяет соединение; при ошибке клиент закрывается
func NewRedis(cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	r := Wrap(redis.NewClient(options(cfg)), logger)

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := r.Health(ctx); err != nil {
		r.client.Close()
		return nil, fmt.Errorf("redis at %s: %w", cfg.Addr(), err)
	}

	logger.Debug("Redis ping ok", zap.String("addr", cfg.Addr()), zap.Int("db", cfg.DB))
	return r, nil
}

// Wrap - Redis поверх готового клиента; nil logger заменяется Nop
func Wrap(client *redis.Client, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Redis{client: client, logger: logger}
}

func options(cfg *config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		ClientName:   clientName,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: readTimeout,
	}
}

func (r *Redis) Close() error {
	r.logger.Info("Closing Redis connection")
	return r.client.Close()
}

func (r *Redis) Health(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

func (r *Redis) Client() *redis.Client {
	return r.client
}
