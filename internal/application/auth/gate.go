// Package auth implementa la puerta de autenticación del portal: registro, verificación,
// login, logout y restauración de sesión sobre el almacenamiento del cliente.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
)

// Claves del almacenamiento del cliente.
const (
	KeyAuthToken       = "auth_token"
	KeyUnverifiedEmail = "unverified_email"
	KeyEmailVerified   = "email_verified"
)

// MinPasswordLength longitud mínima de contraseña.
const MinPasswordLength = 6

// State estado observable de la sesión.
type State int

const (
	Anonymous State = iota
	AuthenticatedUser
	AuthenticatedAdmin
)

func (s State) String() string {
	switch s {
	case AuthenticatedUser:
		return "AuthenticatedUser"
	case AuthenticatedAdmin:
		return "AuthenticatedAdmin"
	default:
		return "Anonymous"
	}
}

// Authenticated indica si hay una cuenta en sesión.
func (s State) Authenticated() bool { return s != Anonymous }

// RegisterInput datos del formulario de registro.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Gate sesión de un cliente. session es el almacenamiento propio del cliente
// (cookies en HTTP, memoria en tests y CLI). No es seguro para uso concurrente.
type Gate struct {
	accounts  repository.AccountRepository
	session   repository.KeyValueStore
	tokens    TokenScheme
	passwords PasswordPolicy
	current   *entity.Account
}

// NewGate construye la puerta en estado Anonymous. tokens y passwords nil usan
// EmailTokens y PlainPasswords.
func NewGate(accounts repository.AccountRepository, session repository.KeyValueStore, tokens TokenScheme, passwords PasswordPolicy) *Gate {
	if tokens == nil {
		tokens = EmailTokens{}
	}
	if passwords == nil {
		passwords = PlainPasswords{}
	}
	return &Gate{accounts: accounts, session: session, tokens: tokens, passwords: passwords}
}

// State estado actual.
func (g *Gate) State() State {
	switch {
	case g.current == nil:
		return Anonymous
	case g.current.IsAdmin():
		return AuthenticatedAdmin
	default:
		return AuthenticatedUser
	}
}

// Current copia de la cuenta en sesión, nil si Anonymous.
func (g *Gate) Current() *entity.Account {
	if g.current == nil {
		return nil
	}
	acc := *g.current
	return &acc
}

// Passwords política de contraseñas en uso.
func (g *Gate) Passwords() PasswordPolicy { return g.passwords }

// Restore recupera la sesión desde el token guardado. Un token que no resuelve a una
// cuenta verificada existente se descarta y el estado queda Anonymous.
func (g *Gate) Restore(ctx context.Context) error {
	g.current = nil
	token, found, err := g.session.Get(ctx, KeyAuthToken)
	if err != nil {
		return err
	}
	if !found || token == "" {
		return nil
	}
	account, err := g.accountForToken(ctx, token)
	if err != nil {
		return err
	}
	if account == nil || !account.Verified {
		return g.session.Delete(ctx, KeyAuthToken)
	}
	g.current = account
	return nil
}

// RestoreToken como Restore pero con un token recibido por otra vía (cabecera Bearer).
// No toca el almacenamiento del cliente.
func (g *Gate) RestoreToken(ctx context.Context, token string) error {
	g.current = nil
	account, err := g.accountForToken(ctx, token)
	if err != nil {
		return err
	}
	if account == nil || !account.Verified {
		return domain.ErrUnauthorized
	}
	g.current = account
	return nil
}

func (g *Gate) accountForToken(ctx context.Context, token string) (*entity.Account, error) {
	email, err := g.tokens.Resolve(token)
	if err != nil || email == "" {
		return nil, nil
	}
	return g.accounts.FindByEmail(ctx, email)
}

// Register crea una cuenta User sin verificar y deja su email pendiente de verificación.
// Si solo falla el guardado del documento, devuelve la cuenta creada junto al error
// (errors.Is(err, domain.ErrStorage)).
func (g *Gate) Register(ctx context.Context, in RegisterInput) (*entity.Account, error) {
	firstName := strings.TrimSpace(in.FirstName)
	email := entity.NormalizeEmail(in.Email)
	if firstName == "" {
		return nil, domain.NewValidationError("firstName", "First name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("email", "Email is required")
	}
	existing, err := g.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}
	if len(in.Password) < MinPasswordLength {
		return nil, domain.ErrWeakPassword
	}
	hash, err := g.passwords.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	account := &entity.Account{
		ID:        entity.NewID(),
		FirstName: firstName,
		LastName:  strings.TrimSpace(in.LastName),
		Email:     email,
		Password:  hash,
		Role:      entity.RoleUser,
		Verified:  false,
	}
	saveErr := g.accounts.Create(ctx, account)
	if saveErr != nil && !errors.Is(saveErr, domain.ErrStorage) {
		return nil, saveErr
	}
	if err := g.session.Set(ctx, KeyUnverifiedEmail, email); err != nil {
		return account, err
	}
	return account, saveErr
}

// PendingEmail email registrado pendiente de verificación ("" si no hay).
func (g *Gate) PendingEmail(ctx context.Context) (string, error) {
	email, _, err := g.session.Get(ctx, KeyUnverifiedEmail)
	return email, err
}

// VerifyEmail marca como verificada la cuenta con ese email.
func (g *Gate) VerifyEmail(ctx context.Context, email string) error {
	account, err := g.accounts.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	account.Verified = true
	saveErr := g.accounts.Update(ctx, account)
	if saveErr != nil && !errors.Is(saveErr, domain.ErrStorage) {
		return saveErr
	}
	if err := g.session.Delete(ctx, KeyUnverifiedEmail); err != nil {
		return err
	}
	if err := g.session.Set(ctx, KeyEmailVerified, "true"); err != nil {
		return err
	}
	return saveErr
}

// TakeEmailVerified consume la marca de verificación reciente (se muestra una sola vez).
func (g *Gate) TakeEmailVerified(ctx context.Context) (bool, error) {
	v, found, err := g.session.Get(ctx, KeyEmailVerified)
	if err != nil || !found {
		return false, err
	}
	if err := g.session.Delete(ctx, KeyEmailVerified); err != nil {
		return false, err
	}
	return v == "true", nil
}

// Login autentica por email (sin distinguir mayúsculas), contraseña y verificación.
// Devuelve el token de sesión emitido.
func (g *Gate) Login(ctx context.Context, email, password string) (string, error) {
	account, err := g.accounts.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if account == nil || !account.Verified || !g.passwords.Compare(account.Password, password) {
		return "", domain.ErrInvalidCredentials
	}
	token, err := g.tokens.Issue(account)
	if err != nil {
		return "", err
	}
	if err := g.session.Set(ctx, KeyAuthToken, token); err != nil {
		return "", err
	}
	g.current = account
	return token, nil
}

// Logout borra el token y vuelve a Anonymous.
func (g *Gate) Logout(ctx context.Context) error {
	g.current = nil
	return g.session.Delete(ctx, KeyAuthToken)
}

// Reissue renueva el token si account es la cuenta en sesión (p. ej. tras cambiar su email).
func (g *Gate) Reissue(ctx context.Context, account *entity.Account) error {
	if g.current == nil || account == nil || g.current.ID != account.ID {
		return nil
	}
	token, err := g.tokens.Issue(account)
	if err != nil {
		return err
	}
	if err := g.session.Set(ctx, KeyAuthToken, token); err != nil {
		return err
	}
	acc := *account
	g.current = &acc
	return nil
}
