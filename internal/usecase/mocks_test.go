package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rural-itinerary/internal/domain"
)

// MockRoutingRepository is a mock of RoutingRepository
type MockRoutingRepository struct {
	mock.Mock
}

func (m *MockRoutingRepository) Geocode(ctx context.Context, place, countryBias string) (*domain.Coordinate, error) {
	args := m.Called(ctx, place, countryBias)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coordinate), args.Error(1)
}

func (m *MockRoutingRepository) Route(ctx context.Context, from, to domain.Coordinate) (*domain.RouteLeg, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteLeg), args.Error(1)
}

func (m *MockRoutingRepository) Profile() string {
	return "driving-car"
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockDatasetRepository is a mock of DatasetRepository
type MockDatasetRepository struct {
	mock.Mock
}

func (m *MockDatasetRepository) LoadReviews(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockDatasetRepository) LoadActivities(ctx context.Context) ([]domain.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *MockDatasetRepository) Name() string {
	return "mock"
}

func floatPtr(v float64) *float64 {
	return &v
}

func coord(lon, lat float64) *domain.Coordinate {
	return &domain.Coordinate{Lon: lon, Lat: lat}
}

// activity - активность с координатами и ценой (nil - нет)
func activity(district, destination, subtype string, cost *float64, loc *domain.Coordinate) domain.Activity {
	return domain.NewActivity(district, destination, subtype, destination+" - "+subtype, cost, loc)
}
