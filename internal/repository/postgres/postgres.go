package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/rural-itinerary/internal/config"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

const pingTimeout = 5 * time.Second

// DB - пул соединений с базой, где лежат таблицы reviews и activities
type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

// New подключается через драйвер pgx; при AutoMigrate создаёт недостающие таблицы
func New(cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	sqlxDB, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s@%s:%d: %w", cfg.DBName, cfg.Host, cfg.Port, err)
	}

	if cfg.MaxConns > 0 {
		sqlxDB.SetMaxOpenConns(cfg.MaxConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlxDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlxDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlxDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	db := Wrap(sqlxDB, logger)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		sqlxDB.Close()
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			sqlxDB.Close()
			return nil, err
		}
	}

	logger.Info("PostgreSQL dataset source connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.DBName),
		zap.Bool("auto_migrate", cfg.AutoMigrate),
	)

	return db, nil
}

// Wrap - DB поверх готового соединения (тесты, другой драйвер); nil logger заменяется Nop
func Wrap(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{DB: sqlxDB, logger: logger}
}

func (db *DB) Close() error {
	db.logger.Info("Closing PostgreSQL connection")
	return db.DB.Close()
}

func (db *DB) Health(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Migrate выполняет встроенные *.up.sql по порядку имён. Скрипты идемпотентны.
func (db *DB) Migrate(ctx context.Context) error {
	names, err := fs.Glob(migrations, "migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		db.logger.Debug("Migration applied", zap.String("name", strings.TrimPrefix(name, "migrations/")))
	}

	return nil
}
