package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-rrhh/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, config.DriverFile, cfg.Storage.Driver)
	assert.Equal(t, config.TokenSchemeEmail, cfg.Auth.TokenScheme,
		"el esquema por defecto replica el token = email del portal original")
	assert.Equal(t, config.PasswordPlain, cfg.Auth.PasswordHashing)
	assert.Zero(t, cfg.Storage.QuotaBytes)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "SQLite")
	v.Set("STORAGE_QUOTA_BYTES", "2048")
	v.Set("HTTP_PORT", "9090")
	v.Set("AUTH_TOKEN_SCHEME", "jwt")
	v.Set("JWT_SECRET", "s3cret")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, 2048, cfg.Storage.QuotaBytes)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.TokenSchemeJWT, cfg.Auth.TokenScheme)
}

func TestFromViper_Invalidos(t *testing.T) {
	cases := map[string]map[string]string{
		"driver desconocido":  {"STORAGE_DRIVER": "redis"},
		"jwt sin secret":      {"AUTH_TOKEN_SCHEME": "jwt"},
		"esquema desconocido": {"AUTH_TOKEN_SCHEME": "cookie"},
		"hashing desconocido": {"AUTH_PASSWORD_HASHING": "md5"},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			v := viper.New()
			for k, val := range values {
				v.Set(k, val)
			}
			_, err := config.FromViper(v)
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "portal", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/portal?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
