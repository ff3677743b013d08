package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rural-itinerary/internal/config"
	"github.com/rural-itinerary/internal/domain"
	"github.com/rural-itinerary/internal/domain/repository"
	"github.com/rural-itinerary/internal/pkg/metrics"
	"go.uber.org/zap"
)

// RouteAnnotator оценивает расстояние и время между соседними точками маршрута.
// Один запрос на пару, без повторов на этом уровне; ошибка пары не прерывает остальные.
type RouteAnnotator struct {
	routing     repository.RoutingRepository
	cache       repository.CacheRepository
	countryBias string
	geocodeTTL  time.Duration
	routeTTL    time.Duration
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewRouteAnnotator - cache может быть nil, тогда результаты не кешируются
func NewRouteAnnotator(
	routing repository.RoutingRepository,
	cache repository.CacheRepository,
	routingCfg *config.RoutingConfig,
	cacheCfg *config.CacheConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) *RouteAnnotator {
	if m == nil {
		m = metrics.NewNop()
	}
	return &RouteAnnotator{
		routing:     routing,
		cache:       cache,
		countryBias: routingCfg.CountryBias,
		geocodeTTL:  cacheCfg.GeocodeTTL,
		routeTTL:    cacheCfg.RouteTTL,
		metrics:     m,
		logger:      logger,
	}
}

// Annotate возвращает по одному сегменту на каждую пару соседних точек
func (a *RouteAnnotator) Annotate(ctx context.Context, coords []domain.Coordinate) []domain.RouteSegment {
	if len(coords) < 2 {
		return nil
	}

	segments := make([]domain.RouteSegment, 0, len(coords)-1)
	for i := 0; i < len(coords)-1; i++ {
		segments = append(segments, a.Segment(ctx, coords[i], coords[i+1]))
	}
	return segments
}

// Segment - оценка одной пары; при ошибке заполняется Failure
func (a *RouteAnnotator) Segment(ctx context.Context, from, to domain.Coordinate) domain.RouteSegment {
	seg := domain.RouteSegment{From: from, To: to}

	key := a.routeKey(from, to)
	var leg domain.RouteLeg
	if a.getCached(ctx, key, &leg) {
		a.metrics.CacheHits.WithLabelValues("route").Inc()
		seg.DistanceKm, seg.DurationMin = &leg.DistanceKm, &leg.DurationMin
		return seg
	}

	res, err := a.routing.Route(ctx, from, to)
	if err != nil {
		seg.Failure = domain.FailureReasonOf(err)
		a.metrics.RouteLookups.WithLabelValues(string(seg.Failure)).Inc()
		a.logger.Warn("Route lookup failed",
			zap.Float64("from_lon", from.Lon),
			zap.Float64("from_lat", from.Lat),
			zap.Float64("to_lon", to.Lon),
			zap.Float64("to_lat", to.Lat),
			zap.String("reason", string(seg.Failure)),
			zap.Error(err))
		return seg
	}

	a.metrics.RouteLookups.WithLabelValues("ok").Inc()
	a.setCached(ctx, key, res, a.routeTTL)

	distance, duration := res.DistanceKm, res.DurationMin
	seg.DistanceKm, seg.DurationMin = &distance, &duration
	return seg
}

// ResolvePlace геокодирует название места с учётом страны по умолчанию.
// Кешируются только успешные ответы.
func (a *RouteAnnotator) ResolvePlace(ctx context.Context, name string) (*domain.Coordinate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewRouteError(domain.RouteFailureNoMatch, fmt.Errorf("empty place name"))
	}

	key := a.geocodeKey(name)
	var point domain.Coordinate
	if a.getCached(ctx, key, &point) {
		a.metrics.CacheHits.WithLabelValues("geocode").Inc()
		return &point, nil
	}

	res, err := a.routing.Geocode(ctx, name, a.countryBias)
	if err != nil {
		reason := domain.FailureReasonOf(err)
		a.metrics.GeocodeLookups.WithLabelValues(string(reason)).Inc()
		a.logger.Warn("Geocoding failed",
			zap.String("place", name),
			zap.String("country", a.countryBias),
			zap.String("reason", string(reason)),
			zap.Error(err))
		return nil, err
	}

	a.metrics.GeocodeLookups.WithLabelValues("ok").Inc()
	a.setCached(ctx, key, res, a.geocodeTTL)

	return res, nil
}

func (a *RouteAnnotator) routeKey(from, to domain.Coordinate) string {
	return fmt.Sprintf("route:%s:%.5f,%.5f:%.5f,%.5f", a.routing.Profile(), from.Lon, from.Lat, to.Lon, to.Lat)
}

func (a *RouteAnnotator) geocodeKey(name string) string {
	return fmt.Sprintf("geocode:%s:%s", strings.ToLower(a.countryBias), strings.ToLower(name))
}

// getCached - ошибки кеша не мешают запросу, считаются промахом
func (a *RouteAnnotator) getCached(ctx context.Context, key string, dst interface{}) bool {
	if a.cache == nil {
		return false
	}

	data, err := a.cache.Get(ctx, key)
	if err != nil {
		a.logger.Debug("Cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if data == nil {
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		a.logger.Warn("Dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		_ = a.cache.Delete(ctx, key)
		return false
	}
	return true
}

func (a *RouteAnnotator) setCached(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if a.cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := a.cache.Set(ctx, key, data, ttl); err != nil {
		a.logger.Debug("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}
