// Package postgres implements the plan, progress and XP stores on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fitcoach/internal/domain"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

var _ domain.Store = (*DB)(nil)

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Ping checks the connection.
func (d *DB) Ping(ctx context.Context) error {
	return d.sql.PingContext(ctx)
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS plans (id BIGSERIAL PRIMARY KEY, user_email TEXT NOT NULL, inputs JSONB NOT NULL, plan TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_plans_user_created_at ON plans(user_email, created_at DESC);",
		"CREATE TABLE IF NOT EXISTS progress (id BIGSERIAL PRIMARY KEY, user_email TEXT NOT NULL, weight DOUBLE PRECISION NOT NULL, note TEXT NOT NULL DEFAULT '', created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_progress_user_created_at ON progress(user_email, created_at DESC);",
		"CREATE TABLE IF NOT EXISTS daily_plans (id BIGSERIAL PRIMARY KEY, user_email TEXT NOT NULL, day TEXT NOT NULL, plan TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_daily_plans_user_day ON daily_plans(user_email, day);",
		"CREATE INDEX IF NOT EXISTS idx_daily_plans_user_created_at ON daily_plans(user_email, created_at DESC);",
		"CREATE TABLE IF NOT EXISTS xp (user_email TEXT PRIMARY KEY, xp INTEGER NOT NULL DEFAULT 0, badges TEXT[] NOT NULL DEFAULT '{}', last_log TIMESTAMPTZ, last_daily TIMESTAMPTZ);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
