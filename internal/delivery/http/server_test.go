package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rural-itinerary/internal/config"
	httpDelivery "github.com/rural-itinerary/internal/delivery/http"
	"github.com/rural-itinerary/internal/delivery/http/handler"
	"github.com/rural-itinerary/internal/domain"
	"github.com/rural-itinerary/internal/pkg/metrics"
	"github.com/rural-itinerary/internal/usecase"
)

func newTestServer(ds *domain.Dataset, gatherer prometheus.Gatherer, m *metrics.Metrics) *httpDelivery.Server {
	logger := zap.NewNop()
	cfg := &config.Config{
		Server:    config.ServerConfig{Host: "127.0.0.1", Port: 0},
		Itinerary: config.ItineraryConfig{MaxDays: 10},
	}

	annotator := usecase.NewRouteAnnotator(nil, nil, &cfg.Routing, &cfg.Cache, m, logger)
	itineraryUC := usecase.NewItineraryUseCase(ds, annotator, &cfg.Itinerary, m, logger)
	dashboardUC := usecase.NewDashboardUseCase(ds, cfg.Itinerary.MaxDays, logger)

	return httpDelivery.NewServer(
		cfg,
		logger,
		ds,
		gatherer,
		handler.NewDashboardHandler(dashboardUC, logger),
		handler.NewItineraryHandler(itineraryUC, logger),
	)
}

func TestServer_Health(t *testing.T) {
	t.Run("dataset loaded", func(t *testing.T) {
		ds := domain.NewDataset([]domain.Review{{Text: "ok", Sentiment: domain.SentimentPositive, AreaType: domain.AreaTypeRural}}, nil, "csv")
		srv := newTestServer(ds, nil, nil)

		resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Status  string `json:"status"`
			Dataset struct {
				Source  string `json:"source"`
				Reviews int    `json:"reviews"`
			} `json:"dataset"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "csv", body.Dataset.Source)
		assert.Equal(t, 1, body.Dataset.Reviews)
	})

	t.Run("dataset missing", func(t *testing.T) {
		srv := newTestServer(nil, nil, nil)

		resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestServer_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	srv := newTestServer(domain.NewDataset(nil, nil, "test"), reg, m)

	// без подходящих направлений маршрут строится без обращения к ORS
	req := httptest.NewRequest(http.MethodPost, "/api/v1/itinerary", strings.NewReader(`{"days":1,"categories":["Wellness"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `itinerary_generations_total{outcome="no_destinations"} 1`)
}

func TestServer_MetricsDisabled(t *testing.T) {
	srv := newTestServer(domain.NewDataset(nil, nil, "test"), nil, nil)

	resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestServer_CORS(t *testing.T) {
	srv := newTestServer(domain.NewDataset(nil, nil, "test"), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://dashboard.local")
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
