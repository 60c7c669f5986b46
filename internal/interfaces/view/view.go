// Package view renderiza las páginas HTML del portal a partir del estado de la sesión
// y de los datos que entregan los casos de uso. Los renderers no tienen efectos.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/jhoicas/portal-rrhh/internal/application/auth"
	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/application/notify"
	"github.com/jhoicas/portal-rrhh/internal/application/routing"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Session estado de la sesión visible en todas las páginas.
type Session struct {
	State   auth.State
	Account *dto.AccountResponse
	Flash   []notify.Message
}

// Authenticated indica si hay cuenta en sesión.
func (s Session) Authenticated() bool { return s.State.Authenticated() }

// IsAdmin indica si la cuenta en sesión es Admin.
func (s Session) IsAdmin() bool { return s.State == auth.AuthenticatedAdmin }

// Data datos de una página. Cada página usa solo sus campos.
type Data struct {
	Session

	// verify-email / login
	PendingEmail  string
	EmailVerified bool

	// register
	RegisterForm dto.RegisterRequest

	// accounts
	Accounts    []dto.AccountResponse
	AccountForm *dto.AccountRequest

	// employees; en profile, las fichas de la cuenta en sesión
	Employees    []dto.EmployeeRow
	EmployeeForm *dto.EmployeeRequest
	ImportResult *dto.ImportResult

	// employees / departments
	Departments []dto.DepartmentResponse

	// requests
	Requests     []dto.RequestResponse
	RequestTypes []string
	ItemRows     int

	// id en edición (accounts, employees); vacío = alta
	EditID string
}

var titles = map[routing.Page]string{
	routing.Home:        "Home",
	routing.Register:    "Register",
	routing.VerifyEmail: "Verify Email",
	routing.Login:       "Login",
	routing.Profile:     "Profile",
	routing.Employees:   "Employees",
	routing.Departments: "Departments",
	routing.Accounts:    "Accounts",
	routing.Requests:    "My Requests",
}

// Renderer plantillas compiladas, una por página.
type Renderer struct {
	pages map[routing.Page]*template.Template
}

var funcs = template.FuncMap{
	"title": func(p routing.Page) string { return titles[p] },
	"seq": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	},
}

// New compila las plantillas embebidas.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[routing.Page]*template.Template, len(titles))}
	for page := range titles {
		t, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+string(page)+".html")
		if err != nil {
			return nil, fmt.Errorf("view: compilar %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render escribe la página completa en w.
func (r *Renderer) Render(w io.Writer, page routing.Page, data Data) error {
	t, ok := r.pages[page]
	if !ok {
		t = r.pages[routing.Home]
		page = routing.Home
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", pageData{Page: page, Data: data}); err != nil {
		return fmt.Errorf("view: renderizar %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

type pageData struct {
	Page routing.Page
	Data
}
