package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rural-itinerary/internal/config"
	"github.com/rural-itinerary/internal/delivery/http/handler"
	"github.com/rural-itinerary/internal/delivery/http/middleware"
	"github.com/rural-itinerary/internal/domain"
	"github.com/rural-itinerary/internal/pkg/errors"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	dataset  *domain.Dataset
	gatherer prometheus.Gatherer

	// Handlers
	dashboardHandler *handler.DashboardHandler
	itineraryHandler *handler.ItineraryHandler
}

// NewServer - создание нового HTTP сервера. gatherer может быть nil, тогда /metrics не регистрируется.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	dataset *domain.Dataset,
	gatherer prometheus.Gatherer,
	dashboardHandler *handler.DashboardHandler,
	itineraryHandler *handler.ItineraryHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Rural Itinerary Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		dataset:          dataset,
		gatherer:         gatherer,
		dashboardHandler: dashboardHandler,
		itineraryHandler: itineraryHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	if s.gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	api := s.app.Group("/api/v1")

	api.Get("/health", s.health)

	// Dashboard
	api.Get("/dashboard/metrics", s.dashboardHandler.GetMetrics)
	api.Get("/dashboard/options", s.dashboardHandler.GetOptions)
	api.Get("/reviews", s.dashboardHandler.GetReviews)
	api.Get("/reviews/words", s.dashboardHandler.GetWordFrequencies)
	api.Get("/activities", s.dashboardHandler.GetActivities)

	// Itinerary
	api.Post("/itinerary", s.itineraryHandler.Generate)
}

// health - 503 пока набор данных не загружен
func (s *Server) health(c *fiber.Ctx) error {
	if s.dataset == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"time":   time.Now(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
		"dataset": fiber.Map{
			"source":     s.dataset.Source,
			"reviews":    len(s.dataset.Reviews),
			"activities": len(s.dataset.Activities),
			"loaded_at":  s.dataset.LoadedAt,
		},
	})
}

// App - fiber приложение, для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404, 405, паники) в общем формате ответа
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(fiber.Map{
				"error": errors.New("HTTP_ERROR", e.Message, e.Code),
			})
		}

		logger.Error("Unhandled HTTP error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": errors.ErrInternalServer,
		})
	}
}
