package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Roles válidos para Account.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Account representa una cuenta del portal.
// Password se guarda tal como lo entrega la política de contraseñas (texto plano por defecto).
type Account struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

// DisplayName nombre a mostrar: "Nombre Apellido", o solo el nombre si no hay apellido.
func (a *Account) DisplayName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// IsAdmin indica si la cuenta tiene rol Admin.
func (a *Account) IsAdmin() bool { return a.Role == RoleAdmin }

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// NormalizeEmail recorta espacios y pasa el email a minúsculas.
// Un cases.Caser no se comparte entre goroutines, por eso se crea en cada llamada.
func NormalizeEmail(email string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(email))
}
