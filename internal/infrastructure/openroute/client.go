package openroute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rural-itinerary/internal/config"
	"github.com/rural-itinerary/internal/domain"
	"github.com/rural-itinerary/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	profile    string
	maxRetries int
	logger     *zap.Logger
}

// NewClient создает клиент OpenRouteService (геокодинг + маршруты)
func NewClient(cfg *config.RoutingConfig, logger *zap.Logger) repository.RoutingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		profile:    cfg.Profile,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

func (c *client) Profile() string {
	return c.profile
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Properties struct {
			Segments []struct {
				Distance float64 `json:"distance"` // meters
				Duration float64 `json:"duration"` // seconds
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

// Geocode возвращает первую найденную точку для названия места
func (c *client) Geocode(ctx context.Context, place, countryBias string) (*domain.Coordinate, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return nil, domain.NewRouteError(domain.RouteFailureNoMatch, fmt.Errorf("empty place name"))
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("text", place)
	params.Set("size", "1")
	if countryBias != "" {
		params.Set("boundary.country", countryBias)
	}

	endpoint := fmt.Sprintf("%s/geocode/search?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling ORS Geocode API",
		zap.String("place", place),
		zap.String("country", countryBias))

	body, err := c.do(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return nil, err
	}

	var geoResp geocodeResponse
	if err := json.Unmarshal(body, &geoResp); err != nil {
		c.logger.Warn("Failed to decode geocode response", zap.Error(err))
		return nil, domain.NewRouteError(domain.RouteFailureMalformedResponse, err)
	}

	if len(geoResp.Features) == 0 {
		return nil, domain.NewRouteError(domain.RouteFailureNoMatch, fmt.Errorf("no match for %q", place))
	}

	coords := geoResp.Features[0].Geometry.Coordinates
	if len(coords) < 2 {
		return nil, domain.NewRouteError(domain.RouteFailureMalformedResponse, fmt.Errorf("feature without coordinates"))
	}

	point, ok := domain.NewCoordinate(coords[0], coords[1])
	if !ok {
		return nil, domain.NewRouteError(domain.RouteFailureMalformedResponse, fmt.Errorf("coordinates out of range"))
	}

	c.logger.Debug("ORS Geocode API call successful",
		zap.String("place", place),
		zap.Float64("lon", point.Lon),
		zap.Float64("lat", point.Lat))

	return &point, nil
}

// Route возвращает расстояние и время первого сегмента лучшего маршрута
func (c *client) Route(ctx context.Context, from, to domain.Coordinate) (*domain.RouteLeg, error) {
	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{{from.Lon, from.Lat}, {to.Lon, to.Lat}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", c.baseURL, c.profile)

	c.logger.Debug("Calling ORS Directions API",
		zap.String("profile", c.profile),
		zap.Float64("from_lon", from.Lon),
		zap.Float64("from_lat", from.Lat),
		zap.Float64("to_lon", to.Lon),
		zap.Float64("to_lat", to.Lat))

	body, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/geo+json, application/json")
		return req, nil
	})
	if err != nil {
		return nil, err
	}

	var dirResp directionsResponse
	if err := json.Unmarshal(body, &dirResp); err != nil {
		c.logger.Warn("Failed to decode directions response", zap.Error(err))
		return nil, domain.NewRouteError(domain.RouteFailureMalformedResponse, err)
	}

	if len(dirResp.Features) == 0 {
		return nil, domain.NewRouteError(domain.RouteFailureNoMatch, fmt.Errorf("no route found"))
	}
	segments := dirResp.Features[0].Properties.Segments
	if len(segments) == 0 {
		return nil, domain.NewRouteError(domain.RouteFailureMalformedResponse, fmt.Errorf("route without segments"))
	}

	leg := &domain.RouteLeg{
		DistanceKm:  segments[0].Distance / 1000,
		DurationMin: segments[0].Duration / 60,
	}

	c.logger.Debug("ORS Directions API call successful",
		zap.Float64("distance_km", leg.DistanceKm),
		zap.Float64("duration_min", leg.DurationMin))

	return leg, nil
}

// do выполняет запрос: одна попытка плюс maxRetries повторов для сетевых и 5xx ошибок
func (c *client) do(ctx context.Context, newReq func() (*http.Request, error)) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Debug("Retrying ORS request", zap.Int("attempt", attempt+1), zap.Error(lastErr))
		}

		body, retryable, err := c.doOnce(newReq)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !retryable || ctx.Err() != nil {
			break
		}
	}

	return nil, lastErr
}

func (c *client) doOnce(newReq func() (*http.Request, error)) ([]byte, bool, error) {
	req, err := newReq()
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Failed to execute request", zap.Error(err))
		return nil, true, domain.NewRouteError(domain.RouteFailureNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, domain.NewRouteError(domain.RouteFailureNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("ORS API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", truncate(string(body), 512)))

		apiErr := fmt.Errorf("ors API error: status %d", resp.StatusCode)
		switch {
		case resp.StatusCode == http.StatusNotFound:
			// ORS отвечает 404, если точку нельзя привязать к дорожной сети
			return nil, false, domain.NewRouteError(domain.RouteFailureNoMatch, apiErr)
		case resp.StatusCode >= http.StatusInternalServerError:
			return nil, true, domain.NewRouteError(domain.RouteFailureServiceError, apiErr)
		default:
			return nil, false, domain.NewRouteError(domain.RouteFailureServiceError, apiErr)
		}
	}

	return body, false, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
