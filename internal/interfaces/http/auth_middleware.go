package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rrhh/internal/application/auth"
	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/application/notify"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/memory"
	"github.com/jhoicas/portal-rrhh/pkg/logger"
)

// Locals keys de la sesión en Fiber.
const (
	LocalGate     = "gate"
	LocalAccount  = "account"
	LocalRole     = "role"
	LocalNotifier = "notifier"
)

// GateFactory construye la puerta de autenticación de cada petición.
type GateFactory struct {
	Accounts  repository.AccountRepository
	Tokens    auth.TokenScheme
	Passwords auth.PasswordPolicy
}

// New puerta sobre el almacenamiento de cliente session.
func (f GateFactory) New(session repository.KeyValueStore) *auth.Gate {
	return auth.NewGate(f.Accounts, session, f.Tokens, f.Passwords)
}

// SessionMiddleware restaura la sesión desde las cookies (páginas HTML) y deja en c.Locals
// la puerta, la cuenta, su rol y el notifier de la petición.
func SessionMiddleware(f GateFactory, cookieSecure bool, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		store := NewCookieStore(c, cookieSecure)
		gate := f.New(store)
		if err := gate.Restore(ctx); err != nil {
			log.Warn().Err(err).Str("path", c.Path()).Msg("no se pudo restaurar la sesión")
		}
		c.Locals(LocalGate, gate)
		c.Locals(LocalNotifier, NewFlashNotifier(ctx, store, log))
		setAccountLocals(c, gate)
		return c.Next()
	}
}

// AuthMiddleware valida el Bearer Token (API JSON) y carga la cuenta en c.Locals.
func AuthMiddleware(f GateFactory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		gate := f.New(memory.NewKVStore())
		if err := gate.RestoreToken(c.UserContext(), tokenString); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalGate, gate)
		c.Locals(LocalNotifier, notify.Discard)
		setAccountLocals(c, gate)
		return c.Next()
	}
}

// RequireRole permite el paso solo si el rol de la cuenta está en roles.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "la cuenta no tiene rol"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Access denied. Admin only."})
	}
}

func setAccountLocals(c *fiber.Ctx, gate *auth.Gate) {
	if acc := gate.Current(); acc != nil {
		c.Locals(LocalAccount, acc)
		c.Locals(LocalRole, acc.Role)
	}
}

// GetGate devuelve la puerta de la petición (después de SessionMiddleware o AuthMiddleware).
func GetGate(c *fiber.Ctx) *auth.Gate {
	g, _ := c.Locals(LocalGate).(*auth.Gate)
	return g
}

// GetAccount devuelve la cuenta en sesión, nil si Anonymous.
func GetAccount(c *fiber.Ctx) *entity.Account {
	a, _ := c.Locals(LocalAccount).(*entity.Account)
	return a
}

// GetRole devuelve el rol de la cuenta en sesión.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetNotifier devuelve el notifier de la petición; notify.Discard si no hay.
func GetNotifier(c *fiber.Ctx) notify.Notifier {
	if n, ok := c.Locals(LocalNotifier).(notify.Notifier); ok {
		return n
	}
	return notify.Discard
}
