package repository

import (
	"context"
	"time"
)

// CacheRepository - байтовое хранилище с TTL для ответов геокодинга и маршрутов.
// Реализации: Redis (общий для API и воркера) и in-process memcache.
type CacheRepository interface {
	// Get - промах возвращает (nil, nil), ошибка только при сбое хранилища
	Get(ctx context.Context, key string) ([]byte, error)

	// Set - при ttl <= 0 срок выбирает реализация
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)
}
