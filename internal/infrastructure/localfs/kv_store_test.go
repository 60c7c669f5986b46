package localfs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-rrhh/internal/infrastructure/localfs"
)

func TestKVStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	s, err := localfs.NewKVStore(dir)
	require.NoError(t, err)

	_, found, err := s.Get(ctx, "ipt_demo_v1")
	require.NoError(t, err)
	assert.False(t, found, "una clave nunca escrita no debe existir")

	require.NoError(t, s.Set(ctx, "ipt_demo_v1", `{"accounts":[]}`))
	v, found, err := s.Get(ctx, "ipt_demo_v1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"accounts":[]}`, v)

	require.NoError(t, s.Set(ctx, "ipt_demo_v1", "segundo"))
	v, _, err = s.Get(ctx, "ipt_demo_v1")
	require.NoError(t, err)
	assert.Equal(t, "segundo", v, "Set debe sobrescribir el valor completo")

	require.NoError(t, s.Delete(ctx, "ipt_demo_v1"))
	_, found, err = s.Get(ctx, "ipt_demo_v1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Delete(ctx, "ipt_demo_v1"), "borrar una clave inexistente no es error")
}

func TestKVStore_NoDejaTemporales(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := localfs.NewKVStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "a/b", "x"))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a%2Fb", entries[0].Name(), "la clave se escapa para no crear subdirectorios")
}

func TestKVStore_ClaveInvalida(t *testing.T) {
	s, err := localfs.NewKVStore(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, s.Set(context.Background(), "..", "x"))
	assert.Error(t, s.Set(context.Background(), "", "x"))
}
