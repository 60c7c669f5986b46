// Package routing resuelve una ruta a la página que se muestra, aplicando los guardas de sesión y rol.
package routing

import (
	"strings"

	"github.com/jhoicas/portal-rrhh/internal/application/auth"
	"github.com/jhoicas/portal-rrhh/internal/application/notify"
)

// Page páginas del portal.
type Page string

const (
	Home        Page = "home"
	Register    Page = "register"
	VerifyEmail Page = "verify-email"
	Login       Page = "login"
	Profile     Page = "profile"
	Employees   Page = "employees"
	Departments Page = "departments"
	Accounts    Page = "accounts"
	Requests    Page = "requests"
)

// Avisos de los guardas.
const (
	NoticeLoginRequired = "Please log in first"
	NoticeAdminOnly     = "Access denied. Admin only."
)

var pages = map[string]Page{
	"register":     Register,
	"verify-email": VerifyEmail,
	"login":        Login,
	"profile":      Profile,
	"employees":    Employees,
	"departments":  Departments,
	"accounts":     Accounts,
	"requests":     Requests,
}

var protected = map[Page]bool{Profile: true, Employees: true, Departments: true, Accounts: true, Requests: true}

var adminOnly = map[Page]bool{Employees: true, Departments: true, Accounts: true}

// Path ruta canónica de la página.
func (p Page) Path() string {
	if p == Home {
		return "/"
	}
	return "/" + string(p)
}

// Protected indica si la página requiere sesión.
func (p Page) Protected() bool { return protected[p] }

// AdminOnly indica si la página requiere rol Admin.
func (p Page) AdminOnly() bool { return adminOnly[p] }

// Resolution resultado de resolver una ruta. Si Redirect no está vacío la página no se
// muestra y Notice describe el aviso a notificar.
type Resolution struct {
	Page     Page
	Redirect string
	Notice   *notify.Message
}

// Resolve traduce path ("#/x", "/x" o "x") a una página. Las rutas desconocidas van a Home.
// Es una función pura de (path, state).
func Resolve(path string, state auth.State) Resolution {
	page := Lookup(path)

	if page.Protected() && !state.Authenticated() {
		return Resolution{
			Page:     Login,
			Redirect: Login.Path(),
			Notice:   &notify.Message{Text: NoticeLoginRequired, Severity: notify.Warning},
		}
	}
	if page.AdminOnly() && state != auth.AuthenticatedAdmin {
		return Resolution{
			Page:     Home,
			Redirect: Home.Path(),
			Notice:   &notify.Message{Text: NoticeAdminOnly, Severity: notify.Danger},
		}
	}
	return Resolution{Page: page}
}

// Lookup página de path sin aplicar guardas.
func Lookup(path string) Page {
	route := strings.TrimPrefix(strings.TrimSpace(path), "#")
	route = strings.Trim(route, "/")
	if page, ok := pages[route]; ok {
		return page
	}
	return Home
}
