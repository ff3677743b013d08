package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счётчики сервиса, регистрируются в переданном Registerer
type Metrics struct {
	ItineraryGenerations *prometheus.CounterVec
	RouteLookups         *prometheus.CounterVec
	GeocodeLookups       *prometheus.CounterVec
	CacheHits            *prometheus.CounterVec
}

// New - создание и регистрация метрик
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ItineraryGenerations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "itinerary",
			Name:      "generations_total",
			Help:      "Itinerary generations by outcome.",
		}, []string{"outcome"}),
		RouteLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "itinerary",
			Name:      "route_lookups_total",
			Help:      "Routing lookups by outcome (ok or failure reason).",
		}, []string{"outcome"}),
		GeocodeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "itinerary",
			Name:      "geocode_lookups_total",
			Help:      "Geocoding lookups by outcome (ok or failure reason).",
		}, []string{"outcome"}),
		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "itinerary",
			Name:      "cache_hits_total",
			Help:      "Cache hits by kind (geocode, route).",
		}, []string{"kind"}),
	}

	if reg != nil {
		reg.MustRegister(m.ItineraryGenerations, m.RouteLookups, m.GeocodeLookups, m.CacheHits)
	}

	return m
}

// NewNop - метрики без регистрации, для тестов
func NewNop() *Metrics {
	return New(nil)
}
