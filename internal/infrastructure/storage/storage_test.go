package storage_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/memory"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/storage"
	"github.com/jhoicas/portal-rrhh/pkg/config"
)

func TestWithQuota_RechazaValoresGrandes(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewKVStore()
	kv := storage.WithQuota(inner, 10)

	require.NoError(t, kv.Set(ctx, "k", "0123456789"))

	err := kv.Set(ctx, "k", strings.Repeat("x", 11))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)

	v, _, err := inner.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "0123456789", v, "un Set rechazado no debe tocar el valor previo")
}

func TestWithQuota_SinLimite(t *testing.T) {
	inner := memory.NewKVStore()
	assert.Same(t, inner, storage.WithQuota(inner, 0))
}

func TestOpen_Drivers(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	for _, driver := range []string{config.DriverMemory, config.DriverFile, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg := &config.Config{Storage: config.StorageConfig{
				Driver:     driver,
				Dir:        dir + "/files",
				SQLitePath: dir + "/db/portal.db",
			}}
			kv, closer, err := storage.Open(ctx, cfg)
			require.NoError(t, err)
			defer closer()

			require.NoError(t, kv.Set(ctx, "ipt_demo_v1", "{}"))
			v, found, err := kv.Get(ctx, "ipt_demo_v1")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "{}", v)
		})
	}
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, _, err := storage.Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "redis"}})
	assert.Error(t, err)
}
