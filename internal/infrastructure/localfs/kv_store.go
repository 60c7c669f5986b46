// Package localfs implementa el almacenamiento clave/valor sobre archivos: un archivo por clave.
package localfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// KVStore guarda cada clave en <dir>/<clave escapada>. Las escrituras reemplazan el archivo de forma atómica.
type KVStore struct {
	dir string
	mu  sync.Mutex
}

// NewKVStore crea el directorio si no existe.
func NewKVStore(dir string) (*KVStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("localfs: directorio vacío")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localfs: crear directorio %s: %w", dir, err)
	}
	return &KVStore{dir: dir}, nil
}

// Dir devuelve el directorio base.
func (s *KVStore) Dir() string { return s.dir }

func (s *KVStore) path(key string) (string, error) {
	name := url.PathEscape(key)
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("localfs: clave inválida %q", key)
	}
	return filepath.Join(s.dir, name), nil
}

// Get lee el archivo de la clave.
func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("localfs: leer %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set escribe en un temporal y lo renombra sobre el destino.
func (s *KVStore) Set(_ context.Context, key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("localfs: crear temporal: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("localfs: escribir %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("localfs: sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("localfs: cerrar temporal: %w", err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("localfs: reemplazar %s: %w", key, err)
	}
	return nil
}

// Delete elimina el archivo de la clave; no falla si no existe.
func (s *KVStore) Delete(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("localfs: eliminar %s: %w", key, err)
	}
	return nil
}
