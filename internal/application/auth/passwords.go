package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordPolicy decide cómo se guardan y comparan las contraseñas.
type PasswordPolicy interface {
	Hash(plain string) (string, error)
	Compare(stored, plain string) bool
	// Reveals indica si el valor guardado es la contraseña en claro (formularios de edición).
	Reveals() bool
}

// PlainPasswords guarda la contraseña tal cual; la comparación distingue mayúsculas.
type PlainPasswords struct{}

func (PlainPasswords) Hash(plain string) (string, error) { return plain, nil }

func (PlainPasswords) Compare(stored, plain string) bool { return stored == plain }

func (PlainPasswords) Reveals() bool { return true }

// BcryptPasswords guarda hashes bcrypt. Los valores guardados que no son hashes bcrypt
// (documentos sembrados o previos) se comparan en claro.
type BcryptPasswords struct {
	Cost int // 0 = bcrypt.DefaultCost
}

func (p BcryptPasswords) Hash(plain string) (string, error) {
	cost := p.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptPasswords) Compare(stored, plain string) bool {
	if !isBcryptHash(stored) {
		return stored == plain
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

func (BcryptPasswords) Reveals() bool { return false }

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}
