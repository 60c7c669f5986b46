package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/portal-rrhh/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ana@example.com", "User", "portal-test", 60)
	require.NoError(t, err)

	email, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
	assert.Equal(t, "User", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ana@example.com", "User", "portal-test", -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ana@example.com", "Admin", "portal-test", 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestJWT_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "ana@example.com", "User", "portal-test", 60)
	assert.Error(t, err)

	_, _, err = pkgjwt.Parse("", "x.y.z")
	assert.Error(t, err)
}

func TestJWT_EmailComoTokenNoEsJWT(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "admin@example.com")
	assert.Error(t, err, "un token del esquema email no debe validar como JWT")
}
