package testhelpers

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rural-itinerary/internal/config"
	"github.com/rural-itinerary/internal/repository/postgres"
	"go.uber.org/zap"
)

// datasetTables - таблицы, очищаемые между тестами
var datasetTables = []string{"reviews", "activities"}

// TestDB - тестовая база с применённой схемой набора данных
type TestDB struct {
	*postgres.DB
}

// SetupTestDB подключается к тестовой базе (TEST_DB_*), применяет схему и очищает таблицы.
// Без доступной базы тест пропускается.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	port, _ := strconv.Atoi(getEnv("TEST_DB_PORT", "5433"))
	cfg := config.DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		DBName:   getEnv("TEST_DB_NAME", "itinerary_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}

	sqlxDB, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		t.Skipf("PostgreSQL not available for integration tests: %v", err)
	}

	tdb := &TestDB{DB: postgres.Wrap(sqlxDB, zap.NewNop())}
	t.Cleanup(func() { _ = tdb.Close() })

	ctx := context.Background()
	if err := tdb.Migrate(ctx); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if err := tdb.Truncate(ctx); err != nil {
		t.Fatalf("truncate dataset tables: %v", err)
	}

	return tdb
}

// Truncate очищает таблицы набора данных
func (tdb *TestDB) Truncate(ctx context.Context) error {
	for _, table := range datasetTables {
		if _, err := tdb.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY", table)); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
