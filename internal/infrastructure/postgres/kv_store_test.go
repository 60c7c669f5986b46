package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-rrhh/internal/infrastructure/postgres"
	"github.com/jhoicas/portal-rrhh/pkg/config"
)

// Requiere una base real: PORTAL_TEST_DATABASE_URL=postgres://... go test ./...
func TestKVStore_RoundTrip(t *testing.T) {
	dsn := os.Getenv("PORTAL_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("PORTAL_TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	defer pool.Close()

	s, err := postgres.NewKVStore(ctx, pool)
	require.NoError(t, err)

	key := "test_" + t.Name()
	t.Cleanup(func() { _ = s.Delete(ctx, key) })

	require.NoError(t, s.Set(ctx, key, "uno"))
	require.NoError(t, s.Set(ctx, key, "dos"))
	v, found, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dos", v)

	require.NoError(t, s.Delete(ctx, key))
	_, found, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
}
