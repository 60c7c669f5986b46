package document

import (
	"context"
	"sync"

	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
)

// Database dueño del documento en memoria. Todas las lecturas y mutaciones pasan por su lock,
// y cada mutación termina con el guardado del documento completo.
type Database struct {
	mu    sync.RWMutex
	doc   *entity.Document
	store *Store
}

// Open carga el documento desde store.
func Open(ctx context.Context, store *Store) (*Database, error) {
	doc, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Database{doc: doc, store: store}, nil
}

// Snapshot copia profunda del estado actual.
func (db *Database) Snapshot() *entity.Document {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.doc.Clone()
}

// Replace sustituye el documento completo y lo guarda.
func (db *Database) Replace(ctx context.Context, doc *entity.Document) error {
	return db.write(ctx, func(cur *entity.Document) error {
		*cur = *doc.Clone()
		return nil
	})
}

func (db *Database) read(fn func(doc *entity.Document)) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	fn(db.doc)
}

// write ejecuta fn bajo el lock exclusivo. Si fn falla no se guarda nada (fn no debe haber mutado).
// Si el guardado falla la mutación queda aplicada en memoria y se devuelve el error de almacenamiento.
func (db *Database) write(ctx context.Context, fn func(doc *entity.Document) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if err := fn(db.doc); err != nil {
		return err
	}
	return db.store.Save(ctx, db.doc)
}
