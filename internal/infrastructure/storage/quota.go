package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
)

var _ repository.KeyValueStore = (*QuotaStore)(nil)

// QuotaStore limita el tamaño de cada valor escrito, como la cuota del almacenamiento local de un navegador.
type QuotaStore struct {
	next  repository.KeyValueStore
	limit int
}

// WithQuota envuelve next; limit <= 0 devuelve next sin cambios.
func WithQuota(next repository.KeyValueStore, limit int) repository.KeyValueStore {
	if limit <= 0 {
		return next
	}
	return &QuotaStore{next: next, limit: limit}
}

func (s *QuotaStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.next.Get(ctx, key)
}

// Set falla con domain.ErrQuotaExceeded si value supera el límite; no escribe nada en ese caso.
func (s *QuotaStore) Set(ctx context.Context, key, value string) error {
	if len(value) > s.limit {
		return fmt.Errorf("%w: %s ocupa %d bytes (límite %d)", domain.ErrQuotaExceeded, key, len(value), s.limit)
	}
	return s.next.Set(ctx, key, value)
}

func (s *QuotaStore) Delete(ctx context.Context, key string) error {
	return s.next.Delete(ctx, key)
}
