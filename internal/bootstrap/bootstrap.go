// Package bootstrap arma el grafo de dependencias del portal a partir de la configuración.
// Lo comparten el servidor HTTP y portalctl.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/portal-rrhh/internal/application/auth"
	"github.com/jhoicas/portal-rrhh/internal/application/usecase"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/document"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/pdf"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/storage"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/xlsx"
	"github.com/jhoicas/portal-rrhh/pkg/config"
	"github.com/jhoicas/portal-rrhh/pkg/logger"
)

// Services dependencias construidas. Close libera el backend de almacenamiento.
type Services struct {
	DB           *document.Database
	Accounts     *document.AccountRepo
	Tokens       auth.TokenScheme
	Passwords    auth.PasswordPolicy
	AccountUC    *usecase.AccountUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	DepartmentUC *usecase.DepartmentUseCase
	RequestUC    *usecase.RequestUseCase

	closer storage.Closer
}

// Close libera los recursos del backend.
func (s *Services) Close() {
	if s.closer != nil {
		s.closer()
	}
}

// New abre el almacenamiento configurado, carga el documento y construye los casos de uso.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Services, error) {
	kv, closer, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	db, err := document.Open(ctx, document.NewStore(kv, log))
	if err != nil {
		closer()
		return nil, fmt.Errorf("bootstrap: abrir documento: %w", err)
	}

	accounts := document.NewAccountRepository(db)
	employees := document.NewEmployeeRepository(db)
	departments := document.NewDepartmentRepository(db)
	requests := document.NewRequestRepository(db)
	passwords := PasswordPolicy(cfg.Auth)

	log.Info().
		Str("storage", cfg.Storage.Driver).
		Str("token_scheme", cfg.Auth.TokenScheme).
		Str("password_hashing", cfg.Auth.PasswordHashing).
		Msg("documento cargado")

	return &Services{
		DB:           db,
		Accounts:     accounts,
		Tokens:       TokenScheme(cfg),
		Passwords:    passwords,
		AccountUC:    usecase.NewAccountUseCase(accounts, passwords),
		EmployeeUC:   usecase.NewEmployeeUseCase(employees, accounts, departments, xlsx.NewEmployeeSheet()),
		DepartmentUC: usecase.NewDepartmentUseCase(departments),
		RequestUC:    usecase.NewRequestUseCase(requests, pdf.NewRequestsReport(cfg.App.Name)),
		closer:       closer,
	}, nil
}

// TokenScheme esquema de token de sesión según AUTH_TOKEN_SCHEME.
func TokenScheme(cfg *config.Config) auth.TokenScheme {
	if cfg.Auth.TokenScheme == config.TokenSchemeJWT {
		return auth.JWTTokens{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer, ExpMinutes: cfg.JWT.Expiration}
	}
	return auth.EmailTokens{}
}

// PasswordPolicy política de contraseñas según AUTH_PASSWORD_HASHING.
func PasswordPolicy(cfg config.AuthConfig) auth.PasswordPolicy {
	if cfg.PasswordHashing == config.PasswordBcrypt {
		return auth.BcryptPasswords{}
	}
	return auth.PlainPasswords{}
}
