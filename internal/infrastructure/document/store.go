// Package document implementa el Persistent Store (documento JSON único) y los repositorios
// de entidades que operan sobre él en memoria.
package document

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
	"github.com/jhoicas/portal-rrhh/pkg/logger"
)

// Key clave bajo la que se guarda el documento completo.
const Key = "ipt_demo_v1"

// Store lee y escribe el documento completo en un KeyValueStore.
type Store struct {
	kv  repository.KeyValueStore
	log *logger.Logger
}

// NewStore construye el store; log puede ser nil.
func NewStore(kv repository.KeyValueStore, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{kv: kv, log: log.Component("document")}
}

// Load devuelve el documento persistido. Si no existe, no es JSON o no cumple el esquema,
// devuelve un documento sembrado y lo guarda de inmediato (un fallo de ese guardado solo se registra).
// Un error de lectura del backend se devuelve envuelto en domain.ErrStorage.
func (s *Store) Load(ctx context.Context) (*entity.Document, error) {
	raw, found, err := s.kv.Get(ctx, Key)
	if err != nil {
		return nil, domain.StorageError("leer documento", err)
	}
	if !found {
		s.log.Info().Str("key", Key).Msg("documento inexistente, sembrando datos por defecto")
		return s.reseed(ctx), nil
	}

	doc, err := decode(raw)
	if err != nil {
		s.log.Warn().Err(err).Str("key", Key).Msg("documento corrupto, sembrando datos por defecto")
		return s.reseed(ctx), nil
	}
	return doc, nil
}

// Save serializa y sobrescribe el documento completo.
func (s *Store) Save(ctx context.Context, doc *entity.Document) error {
	doc.Normalize()
	data, err := json.Marshal(doc)
	if err != nil {
		return domain.StorageError("serializar documento", err)
	}
	if err := s.kv.Set(ctx, Key, string(data)); err != nil {
		s.log.Error().Err(err).Int("bytes", len(data)).Msg("no se pudo guardar el documento")
		return domain.StorageError("guardar documento", err)
	}
	return nil
}

func (s *Store) reseed(ctx context.Context) *entity.Document {
	doc := Seed()
	if err := s.Save(ctx, doc); err != nil {
		s.log.Error().Err(err).Msg("no se pudo guardar el documento sembrado")
	}
	return doc
}

func decode(raw string) (*entity.Document, error) {
	if err := validateRaw(raw); err != nil {
		return nil, err
	}
	var doc entity.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decodificar documento: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}
