package repository

import (
	"context"

	"github.com/rural-itinerary/internal/domain"
)

// RoutingRepository - внешний сервис геокодинга и маршрутов.
// Ошибки возвращаются как *domain.RouteError с причиной.
type RoutingRepository interface {
	// Geocode возвращает лучшую точку для названия места с учётом страны
	Geocode(ctx context.Context, place, countryBias string) (*domain.Coordinate, error)

	// Route возвращает расстояние (км) и время (мин) лучшего маршрута
	Route(ctx context.Context, from, to domain.Coordinate) (*domain.RouteLeg, error)

	// Profile - профиль передвижения (driving-car и т.д.)
	Profile() string
}
