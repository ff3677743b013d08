package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Dataset   DatasetConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Routing   RoutingConfig
	Itinerary ItineraryConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

// DatasetConfig - откуда загружаются таблицы отзывов и активностей
type DatasetConfig struct {
	Source         string
	ReviewsPath    string
	ActivitiesPath string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// AutoMigrate - создать таблицы набора данных при подключении
	AutoMigrate     bool
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GeocodeTTL time.Duration
	RouteTTL   time.Duration
}

// LogConfig - Format "json" или "console"; при пустом значении console только для debug
type LogConfig struct {
	Level  string
	Format string
}

// RoutingConfig - настройки OpenRouteService (геокодинг и маршруты)
type RoutingConfig struct {
	BaseURL        string
	APIKey         string
	Profile        string
	CountryBias    string
	RequestTimeout int
	MaxRetries     int
}

type ItineraryConfig struct {
	RemainderPolicy string
	MaxDays         int
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxBatch      int
}

const (
	DatasetSourceCSV      = "csv"
	DatasetSourcePostgres = "postgres"
)

var routingProfiles = map[string]bool{
	"driving-car":     true,
	"driving-hgv":     true,
	"cycling-regular": true,
	"foot-walking":    true,
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// .env необязателен, достаточно переменных окружения
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("API_CORS_ORIGINS"),
		},
		Dataset: DatasetConfig{
			Source:         strings.ToLower(v.GetString("DATASET_SOURCE")),
			ReviewsPath:    v.GetString("DATASET_REVIEWS_PATH"),
			ActivitiesPath: v.GetString("DATASET_ACTIVITIES_PATH"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			AutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GeocodeTTL: time.Duration(v.GetInt("CACHE_GEOCODE_TTL")) * time.Second,
			RouteTTL:   time.Duration(v.GetInt("CACHE_ROUTE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		Routing: RoutingConfig{
			BaseURL:        v.GetString("ORS_BASE_URL"),
			APIKey:         v.GetString("ORS_API_KEY"),
			Profile:        v.GetString("ORS_PROFILE"),
			CountryBias:    v.GetString("ORS_COUNTRY_BIAS"),
			RequestTimeout: v.GetInt("ORS_REQUEST_TIMEOUT"),
			MaxRetries:     v.GetInt("ORS_MAX_RETRIES"),
		},
		Itinerary: ItineraryConfig{
			RemainderPolicy: strings.ToLower(v.GetString("ITINERARY_REMAINDER_POLICY")),
			MaxDays:         v.GetInt("ITINERARY_MAX_DAYS"),
		},
		Worker: WorkerConfig{
			Enabled:       v.GetBool("WORKER_ENABLED"),
			ConsumerGroup: v.GetString("WORKER_CONSUMER_GROUP"),
			MaxBatch:      v.GetInt("WORKER_MAX_BATCH"),
		},
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Dataset.Source == "" {
		c.Dataset.Source = DatasetSourceCSV
	}
	if c.Dataset.ReviewsPath == "" {
		c.Dataset.ReviewsPath = "Geo_Reviews_With_Coordinates.csv"
	}
	if c.Dataset.ActivitiesPath == "" {
		c.Dataset.ActivitiesPath = "Rural_Activities_Expanded.csv"
	}
	if c.Cache.GeocodeTTL == 0 {
		c.Cache.GeocodeTTL = 24 * time.Hour
	}
	if c.Cache.RouteTTL == 0 {
		c.Cache.RouteTTL = 6 * time.Hour
	}
	if c.Routing.BaseURL == "" {
		c.Routing.BaseURL = "https://api.openrouteservice.org"
	}
	if c.Routing.Profile == "" {
		c.Routing.Profile = "driving-car"
	}
	if c.Routing.CountryBias == "" {
		c.Routing.CountryBias = "LK"
	}
	if c.Routing.RequestTimeout == 0 {
		c.Routing.RequestTimeout = 10
	}
	if c.Itinerary.RemainderPolicy == "" {
		c.Itinerary.RemainderPolicy = "drop"
	}
	if c.Itinerary.MaxDays == 0 {
		c.Itinerary.MaxDays = 10
	}
	if c.Worker.ConsumerGroup == "" {
		c.Worker.ConsumerGroup = "itinerary-workers"
	}
	if c.Worker.MaxBatch == 0 {
		c.Worker.MaxBatch = 10
	}
}

func (c *Config) validate() error {
	switch c.Dataset.Source {
	case DatasetSourceCSV, DatasetSourcePostgres:
	default:
		return fmt.Errorf("unsupported DATASET_SOURCE %q", c.Dataset.Source)
	}
	if !routingProfiles[c.Routing.Profile] {
		return fmt.Errorf("unsupported ORS_PROFILE %q", c.Routing.Profile)
	}
	if c.Routing.MaxRetries < 0 {
		return fmt.Errorf("ORS_MAX_RETRIES must not be negative")
	}
	switch c.Itinerary.RemainderPolicy {
	case "drop", "spread":
	default:
		return fmt.Errorf("unsupported ITINERARY_REMAINDER_POLICY %q", c.Itinerary.RemainderPolicy)
	}
	if c.Itinerary.MaxDays < 1 {
		return fmt.Errorf("ITINERARY_MAX_DAYS must be at least 1, got %d", c.Itinerary.MaxDays)
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN - строка подключения в формате key=value
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
