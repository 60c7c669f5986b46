package http

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
)

var _ repository.KeyValueStore = (*CookieStore)(nil)

// cookieTTL vida de las cookies del cliente.
const cookieTTL = 30 * 24 * time.Hour

// CookieStore almacenamiento propio del cliente sobre cookies. Las escrituras de la petición
// en curso se leen desde overlay, porque las cookies nuevas solo llegan en la siguiente.
type CookieStore struct {
	c       *fiber.Ctx
	secure  bool
	overlay map[string]*string // nil = borrada
}

// NewCookieStore construye el store para la petición c.
func NewCookieStore(c *fiber.Ctx, secure bool) *CookieStore {
	return &CookieStore{c: c, secure: secure, overlay: map[string]*string{}}
}

func (s *CookieStore) Get(_ context.Context, key string) (string, bool, error) {
	if v, ok := s.overlay[key]; ok {
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}
	raw := s.c.Cookies(key)
	if raw == "" {
		return "", false, nil
	}
	value, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		// cookie ilegible = ausente
		return "", false, nil
	}
	return string(value), true, nil
}

func (s *CookieStore) Set(_ context.Context, key, value string) error {
	s.overlay[key] = &value
	s.c.Cookie(&fiber.Cookie{
		Name:     key,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(value)),
		Path:     "/",
		Expires:  time.Now().Add(cookieTTL),
		Secure:   s.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

func (s *CookieStore) Delete(_ context.Context, key string) error {
	s.overlay[key] = nil
	s.c.Cookie(&fiber.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		Secure:   s.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
