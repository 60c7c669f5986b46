package auth

import (
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/pkg/jwt"
)

// TokenScheme emite y resuelve el token de sesión de una cuenta.
type TokenScheme interface {
	Issue(account *entity.Account) (string, error)
	// Resolve devuelve el email al que pertenece el token.
	Resolve(token string) (string, error)
}

// EmailTokens token = email de la cuenta, sin firma ni expiración.
type EmailTokens struct{}

func (EmailTokens) Issue(account *entity.Account) (string, error) {
	return account.Email, nil
}

func (EmailTokens) Resolve(token string) (string, error) {
	return entity.NormalizeEmail(token), nil
}

// JWTTokens token HS256 firmado con subject = email.
type JWTTokens struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

func (t JWTTokens) Issue(account *entity.Account) (string, error) {
	return jwt.Generate(t.Secret, account.Email, account.Role, t.Issuer, t.ExpMinutes)
}

func (t JWTTokens) Resolve(token string) (string, error) {
	email, _, err := jwt.Parse(t.Secret, token)
	if err != nil {
		return "", err
	}
	return entity.NormalizeEmail(email), nil
}
