package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rrhh/internal/application/auth"
	"github.com/jhoicas/portal-rrhh/internal/application/routing"
	"github.com/jhoicas/portal-rrhh/internal/application/usecase"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
	"github.com/jhoicas/portal-rrhh/internal/interfaces/view"
	"github.com/jhoicas/portal-rrhh/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Accounts     repository.AccountRepository
	Tokens       auth.TokenScheme
	Passwords    auth.PasswordPolicy
	AccountUC    *usecase.AccountUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	DepartmentUC *usecase.DepartmentUseCase
	RequestUC    *usecase.RequestUseCase
	Views        *view.Renderer
	CookieSecure bool
	Log          *logger.Logger
}

// Router registra la API JSON y las páginas del portal.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	gates := GateFactory{Accounts: deps.Accounts, Tokens: deps.Tokens, Passwords: deps.Passwords}

	// API JSON (Bearer Token = token de sesión)
	api := app.Group("/api")
	apiLog := log.Component("api")

	authHandler := NewAuthHandler(gates, apiLog)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/verify", authHandler.Verify)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(gates))
	protected.Get("/auth/me", authHandler.Me)

	admin := RequireRole(entity.RoleAdmin)

	// Accounts (Admin)
	accounts := protected.Group("/accounts", admin)
	accountHandler := NewAccountHandler(deps.AccountUC, apiLog)
	accounts.Get("/", accountHandler.List)
	accounts.Post("/", accountHandler.Create)
	accounts.Put("/:id", accountHandler.Update)
	accounts.Delete("/:id", accountHandler.Delete)
	accounts.Post("/:id/password", accountHandler.ResetPassword)

	// Employees y departments (Admin)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.DepartmentUC, apiLog)
	employees := protected.Group("/employees", admin)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	protected.Get("/departments", admin, employeeHandler.ListDepartments)

	// Requests (cualquier cuenta autenticada)
	requests := protected.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC, apiLog)
	requests.Get("/", requestHandler.List)
	requests.Post("/", requestHandler.Create)

	// Portal HTML (sesión en cookies)
	portal := NewPortalHandler(deps.Views, deps.AccountUC, deps.EmployeeUC, deps.DepartmentUC, deps.RequestUC, log)
	site := app.Group("/", SessionMiddleware(gates, deps.CookieSecure, log))

	site.Post("/register", portal.Register)
	site.Post("/verify-email", portal.VerifyEmail)
	site.Post("/login", portal.Login)
	site.Post("/logout", portal.Logout)

	acc := site.Group("/accounts", portal.Guard(routing.Accounts))
	acc.Post("/", portal.CreateAccount)
	acc.Post("/:id", portal.UpdateAccount)
	acc.Post("/:id/password", portal.ResetPassword)
	acc.Post("/:id/delete", portal.DeleteAccount)

	emp := site.Group("/employees", portal.Guard(routing.Employees))
	emp.Get("/export.xlsx", portal.ExportEmployees)
	emp.Post("/import", portal.ImportEmployees)
	emp.Post("/", portal.CreateEmployee)
	emp.Post("/:id", portal.UpdateEmployee)
	emp.Post("/:id/delete", portal.DeleteEmployee)

	site.Post("/departments", portal.Guard(routing.Departments), portal.DepartmentAction)

	req := site.Group("/requests", portal.Guard(routing.Requests))
	req.Get("/export.pdf", portal.ExportRequests)
	req.Post("/", portal.CreateRequest)
	req.Post("/:id/approve", portal.ChangeRequestStatus(true))
	req.Post("/:id/reject", portal.ChangeRequestStatus(false))

	site.Get("/", portal.Page)
	site.Get("/:page", portal.Page)
}
