package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "portal.db"))
	require.NoError(t, err)
	defer s.Close()

	_, found, err := s.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "auth_token", "admin@example.com"))
	require.NoError(t, s.Set(ctx, "auth_token", "otro@example.com"))

	v, found, err := s.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "otro@example.com", v, "el upsert debe reemplazar el valor")

	var rows int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM kv_store`).Scan(&rows))
	assert.Equal(t, 1, rows)

	require.NoError(t, s.Delete(ctx, "auth_token"))
	_, found, err = s.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOpen_Idempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.db")
	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Set(context.Background(), "k", "v"))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	v, found, err := s2.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, found, "los datos deben sobrevivir a la reapertura")
	assert.Equal(t, "v", v)
}
