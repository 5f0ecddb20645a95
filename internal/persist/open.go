package persist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Hami23p/Learnify/internal/platform/cache"
	"github.com/Hami23p/Learnify/internal/platform/config"
	"github.com/Hami23p/Learnify/internal/platform/database"
)

// Backend is the store selected by configuration together with the
// connections it owns. DB is also set when only the audit log needs it.
type Backend struct {
	Store  Store
	DB     *database.DB
	Cache  *cache.Cache
	SQLite *SQLiteStore
}

// Open connects whatever cfg asks for and builds the matching store.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	b := &Backend{}

	if cfg.NeedsDatabase() {
		db, err := database.New(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
		if err != nil {
			return nil, fmt.Errorf("connecting database: %w", err)
		}
		b.DB = db
	}

	switch cfg.Store.Driver {
	case config.DriverFile:
		b.Store = NewFileStore(cfg.Store.UsersPath(), cfg.Store.CoursesPath())
	case config.DriverPostgres:
		s, err := NewPostgresStore(b.DB.Pool)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.Store = s
	case config.DriverRedis:
		c, err := cache.New(ctx, cfg.Cache.URL, cfg.Cache.KeyPrefix)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("connecting cache: %w", err)
		}
		b.Cache = c
		b.Store = NewRedisStore(c)
	case config.DriverSQLite:
		s, err := OpenSQLite(ctx, cfg.Store.SQLitePath())
		if err != nil {
			b.Close()
			return nil, err
		}
		b.SQLite = s
		b.Store = s
	default:
		b.Close()
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	slog.Info("store opened", "driver", cfg.Store.Driver)
	return b, nil
}

// Close releases the connections held by b.
func (b *Backend) Close() {
	if b.Cache != nil {
		if err := b.Cache.Close(); err != nil {
			slog.Warn("closing cache", "error", err)
		}
	}
	if b.SQLite != nil {
		if err := b.SQLite.Close(); err != nil {
			slog.Warn("closing sqlite", "error", err)
		}
	}
	if b.DB != nil {
		b.DB.Close()
	}
}
