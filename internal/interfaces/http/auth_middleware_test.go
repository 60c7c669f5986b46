package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-rrhh/internal/application/auth"
	"github.com/jhoicas/portal-rrhh/internal/application/usecase"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/document"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/memory"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/portal-rrhh/internal/interfaces/http"
	"github.com/jhoicas/portal-rrhh/internal/interfaces/view"
	pkgjwt "github.com/jhoicas/portal-rrhh/pkg/jwt"
	"github.com/jhoicas/portal-rrhh/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "portal-rrhh-test"
	testExpMin    = 60
	testUserEmail = "user@example.com"
	testUserPass  = "secret1"
)

// testEnv aplicación completa sobre un documento en memoria.
type testEnv struct {
	app       *fiber.App
	db        *document.Database
	accounts  *document.AccountRepo
	employees *document.EmployeeRepo
	requests  *document.RequestRepo
}

type envOptions struct {
	quota  int
	tokens auth.TokenScheme
}

// newTestEnv construye la app con el Router real. quota > 0 limita el tamaño del documento.
func newTestEnv(t *testing.T, opts envOptions) *testEnv {
	t.Helper()
	var kv repository.KeyValueStore = memory.NewKVStore()
	kv = storage.WithQuota(kv, opts.quota)
	db, err := document.Open(context.Background(), document.NewStore(kv, logger.Nop()))
	require.NoError(t, err)

	views, err := view.New()
	require.NoError(t, err)

	accounts := document.NewAccountRepository(db)
	employees := document.NewEmployeeRepository(db)
	departments := document.NewDepartmentRepository(db)
	requests := document.NewRequestRepository(db)
	tokens := opts.tokens
	if tokens == nil {
		tokens = auth.EmailTokens{}
	}
	passwords := auth.PlainPasswords{}

	app := fiber.New(fiber.Config{Immutable: true})
	apphttp.Router(app, apphttp.RouterDeps{
		Accounts:     accounts,
		Tokens:       tokens,
		Passwords:    passwords,
		AccountUC:    usecase.NewAccountUseCase(accounts, passwords),
		EmployeeUC:   usecase.NewEmployeeUseCase(employees, accounts, departments, nil),
		DepartmentUC: usecase.NewDepartmentUseCase(departments),
		RequestUC:    usecase.NewRequestUseCase(requests, nil),
		Views:        views,
		Log:          logger.Nop(),
	})
	return &testEnv{app: app, db: db, accounts: accounts, employees: employees, requests: requests}
}

// addUser crea una cuenta User directamente en el repositorio.
func (e *testEnv) addUser(t *testing.T, email string, verified bool) *entity.Account {
	t.Helper()
	acc := &entity.Account{
		ID:        entity.NewID(),
		FirstName: "Usuario",
		LastName:  "Prueba",
		Email:     email,
		Password:  testUserPass,
		Role:      entity.RoleUser,
		Verified:  verified,
	}
	require.NoError(t, e.accounts.Create(context.Background(), acc))
	return acc
}

// doRequest lanza una petición con el header Authorization indicado.
func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: la cuenta Admin sembrada accede a una ruta Admin → HTTP 200.
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	resp := doRequest(t, env.app, http.MethodGet, "/api/accounts", "Bearer "+document.SeedAdminEmail)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "admin debe poder listar cuentas")

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, document.SeedAdminEmail, body[0]["email"])
	assert.NotContains(t, body[0], "password", "la respuesta no expone la contraseña")
}

// Caso 2: una cuenta User → HTTP 403 FORBIDDEN en ruta Admin.
func TestRequireRole_UserBloqueadoEnRutaAdmin(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	env.addUser(t, testUserEmail, true)

	for _, path := range []string{"/api/accounts", "/api/employees", "/api/departments"} {
		resp := doRequest(t, env.app, http.MethodGet, path, "Bearer "+testUserEmail)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
		assert.Contains(t, string(body), "FORBIDDEN", path)
	}
}

// Caso 2b: una cuenta User sí accede a sus solicitudes.
func TestRequireRole_UserAccedeASusSolicitudes(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	env.addUser(t, testUserEmail, true)

	resp := doRequest(t, env.app, http.MethodGet, "/api/requests", "Bearer "+testUserEmail)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 3: sin rol cargado en locals → HTTP 401 MISSING_ROLE.
func TestRequireRole_SinRol_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", apphttp.RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := doRequest(t, app, http.MethodGet, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	resp := doRequest(t, env.app, http.MethodGet, "/api/auth/me", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	env.addUser(t, "pendiente@example.com", false)

	cases := map[string]string{
		"formato":         "Token " + document.SeedAdminEmail,
		"cuenta inexiste": "Bearer nadie@example.com",
		"sin verificar":   "Bearer pendiente@example.com",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			resp := doRequest(t, env.app, http.MethodGet, "/api/auth/me", header)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), "INVALID_TOKEN")
		})
	}
}

func TestAuthMiddleware_CargaCuentaYRol(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(apphttp.GateFactory{Accounts: env.accounts}), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"email": apphttp.GetAccount(c).Email,
			"role":  apphttp.GetRole(c),
			"state": apphttp.GetGate(c).State().String(),
		})
	})

	resp := doRequest(t, app, http.MethodGet, "/me", "bearer ADMIN@example.com")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el esquema Bearer no distingue mayúsculas")

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, document.SeedAdminEmail, body["email"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
	assert.Equal(t, auth.AuthenticatedAdmin.String(), body["state"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests esquema JWT
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_JWT(t *testing.T) {
	env := newTestEnv(t, envOptions{tokens: auth.JWTTokens{Secret: testJWTSecret, Issuer: testIssuer, ExpMinutes: testExpMin}})

	tok, err := pkgjwt.Generate(testJWTSecret, document.SeedAdminEmail, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doRequest(t, env.app, http.MethodGet, "/api/auth/me", "Bearer "+tok)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	expired, err := pkgjwt.Generate(testJWTSecret, document.SeedAdminEmail, entity.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)
	resp = doRequest(t, env.app, http.MethodGet, "/api/auth/me", "Bearer "+expired)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "token expirado")

	resp = doRequest(t, env.app, http.MethodGet, "/api/auth/me", "Bearer "+document.SeedAdminEmail)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "con jwt el email no sirve como token")
}
