// Package memory implementa el almacenamiento clave/valor en memoria (tests y demos efímeras).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// KVStore almacén clave/valor protegido por mutex.
type KVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKVStore construye un almacén vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string]string)}
}

// Get devuelve el valor de key.
func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set guarda value bajo key.
func (s *KVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Delete elimina key; no falla si no existe.
func (s *KVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
