package repository

import (
	"context"

	"github.com/rural-itinerary/internal/domain"
)

// StreamRepository - очередь запросов маршрута и стрим результатов на Redis Streams
type StreamRepository interface {
	// ConsumeBatch читает до maxCount сообщений без долгой блокировки
	ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error)

	// AckMessages - одна команда XACK на батч; пустой список не ходит в Redis
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error

	// CreateConsumerGroup создаёт стрим и группу; существующая группа не ошибка
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// PublishToStream кладёт JSON data в поле "data" новой записи
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
