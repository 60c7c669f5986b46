// Package storage selecciona el backend clave/valor según la configuración.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/localfs"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/memory"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/postgres"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/sqlite"
	"github.com/jhoicas/portal-rrhh/pkg/config"
)

// Closer libera los recursos del backend (pool, archivo SQLite).
type Closer func()

// Open construye el KeyValueStore configurado, con la cuota aplicada si STORAGE_QUOTA_BYTES > 0.
func Open(ctx context.Context, cfg *config.Config) (repository.KeyValueStore, Closer, error) {
	kv, closer, err := open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return WithQuota(kv, cfg.Storage.QuotaBytes), closer, nil
}

func open(ctx context.Context, cfg *config.Config) (repository.KeyValueStore, Closer, error) {
	noop := func() {}
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return memory.NewKVStore(), noop, nil
	case config.DriverFile:
		kv, err := localfs.NewKVStore(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		return kv, noop, nil
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.Storage.SQLitePath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("storage: crear directorio sqlite: %w", err)
			}
		}
		kv, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { _ = kv.Close() }, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("storage: conexión a PostgreSQL: %w", err)
		}
		kv, err := postgres.NewKVStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return kv, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
	}
}
