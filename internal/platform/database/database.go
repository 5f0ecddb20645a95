// Package database manages the PostgreSQL pool used by the postgres store and
// the audit log.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a pgx connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// ParseURL validates a PostgreSQL connection URL.
func ParseURL(url string) (*pgxpool.Config, error) {
	if url == "" {
		return nil, fmt.Errorf("database URL is empty")
	}
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}
	return cfg, nil
}

// New opens a pool, pings it and makes sure the Learnify tables exist.
func New(ctx context.Context, url string, maxConns, minConns int) (*DB, error) {
	cfg, err := ParseURL(url)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = int32(maxConns)
	cfg.MinConns = int32(minConns)
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := &DB{Pool: pool}
	if err := db.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the tables if they are missing. Existing tables are
// left alone.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (db *DB) Close() {
	db.Pool.Close()
}

// HealthCheck verifies the database connection is alive.
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// Schema mirrors the flat files: one row per record, ordered by position.
const Schema = `
CREATE TABLE IF NOT EXISTS learnify_users (
  position INTEGER PRIMARY KEY,
  role     TEXT NOT NULL,
  username TEXT NOT NULL,
  name     TEXT NOT NULL,
  email    TEXT NOT NULL,
  password TEXT NOT NULL,
  address  TEXT NOT NULL,
  contact  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS learnify_courses (
  position    INTEGER PRIMARY KEY,
  title       TEXT NOT NULL,
  description TEXT NOT NULL,
  instructor  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS learnify_events (
  id         BIGSERIAL PRIMARY KEY,
  event_type TEXT NOT NULL,
  actor      TEXT NOT NULL DEFAULT '',
  target     TEXT NOT NULL DEFAULT '',
  data       JSONB NOT NULL DEFAULT '{}'::jsonb,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
