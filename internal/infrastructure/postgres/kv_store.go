package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

const createKVTable = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// KVStore implementación del puerto KeyValueStore sobre PostgreSQL.
type KVStore struct {
	pool *pgxpool.Pool
}

// NewKVStore construye el adaptador y asegura que exista la tabla kv_store.
func NewKVStore(ctx context.Context, pool *pgxpool.Pool) (*KVStore, error) {
	if _, err := pool.Exec(ctx, createKVTable); err != nil {
		return nil, fmt.Errorf("crear tabla kv_store: %w", err)
	}
	return &KVStore{pool: pool}, nil
}

// Get obtiene el valor de una clave.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get kv %s: %w", key, err)
	}
	return v, true, nil
}

// Set inserta o sobrescribe el valor de una clave.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set kv %s: %w", key, err)
	}
	return nil
}

// Delete elimina una clave.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete kv %s: %w", key, err)
	}
	return nil
}
