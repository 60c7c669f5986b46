package repository

import "context"

// KeyValueStore puerto del almacenamiento durable clave/valor (equivalente al localStorage del navegador).
type KeyValueStore interface {
	// Get devuelve found=false si la clave no existe.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
