package repository

import (
	"context"

	"github.com/rural-itinerary/internal/domain"
)

// DatasetRepository загружает исходные таблицы (только чтение)
type DatasetRepository interface {
	// LoadReviews возвращает нормализованные отзывы; строки с неизвестной
	// тональностью или типом местности отбрасываются
	LoadReviews(ctx context.Context) ([]domain.Review, error)

	// LoadActivities возвращает активности с вычисленной категорией
	LoadActivities(ctx context.Context) ([]domain.Activity, error)

	// Name - имя источника для логов
	Name() string
}
