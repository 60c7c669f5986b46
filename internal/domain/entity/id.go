package entity

import "github.com/google/uuid"

// NewID genera un identificador opaco para entidades nuevas.
func NewID() string { return uuid.New().String() }
