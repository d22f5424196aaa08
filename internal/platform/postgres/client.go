package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"speakyz-backend/internal/common/config"
	"speakyz-backend/internal/common/logger"

	_ "github.com/lib/pq"
)

// ErrNotConfigured возвращается, когда DATABASE_URL не задан.
// Приложение в этом случае продолжает работу без хранилища.
var ErrNotConfigured = errors.New("postgres: DATABASE_URL is not set")

type Client struct {
	db *sql.DB
}

func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.Postgres.URL == "" {
		return nil, ErrNotConfigured
	}

	db, err := sql.Open("postgres", cfg.Postgres.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настройка пула соединений
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("PostgreSQL client initialized")

	return &Client{db: db}, nil
}

// GetDB возвращает экземпляр базы данных
func (c *Client) GetDB() *sql.DB {
	return c.db
}

// Close закрывает соединение с базой данных
func (c *Client) Close() error {
	return c.db.Close()
}

// HealthCheck проверяет здоровье базы данных
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Схема создается при каждом старте; выражения идемпотентны и никогда
// не мигрируют и не удаляют существующие таблицы. UNIQUE на telegram_id
// закрывает гонку check-then-insert при одновременной первой регистрации.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		telegram_id BIGINT NOT NULL UNIQUE,
		username VARCHAR(255),
		first_name VARCHAR(255),
		last_name VARCHAR(255),
		subscription_type VARCHAR(50),
		subscription_end TIMESTAMPTZ,
		speaking_clubs_count INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS faq (
		id SERIAL PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_by BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL,
		telegram_id BIGINT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		subscription_type VARCHAR(50) NOT NULL,
		payment_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		is_verified BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

// EnsureSchema создает таблицы users, faq и payments, если их нет.
func (c *Client) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	logger.Info().Msg("Database schema ensured")
	return nil
}
