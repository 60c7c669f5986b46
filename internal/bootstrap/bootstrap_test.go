package bootstrap_test

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-rrhh/internal/application/auth"
	"github.com/jhoicas/portal-rrhh/internal/bootstrap"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/document"
	"github.com/jhoicas/portal-rrhh/pkg/config"
	"github.com/jhoicas/portal-rrhh/pkg/logger"
)

func loadConfig(t *testing.T, values map[string]string) *config.Config {
	t.Helper()
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	return cfg
}

func TestNew_SQLiteSiembraYPersiste(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/portal.db"
	cfg := loadConfig(t, map[string]string{"STORAGE_DRIVER": "sqlite", "SQLITE_PATH": path})

	svc, err := bootstrap.New(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	admin, err := svc.Accounts.FindByEmail(ctx, document.SeedAdminEmail)
	require.NoError(t, err)
	require.NotNil(t, admin)

	acc, err := svc.AccountUC.VerifyByEmail(ctx, document.SeedAdminEmail)
	require.NoError(t, err)
	assert.True(t, acc.Verified)
	svc.Close()

	reopened, err := bootstrap.New(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()
	list, err := reopened.AccountUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, admin.ID, list[0].ID, "el documento se recarga en lugar de resembrarse")
}

func TestTokenSchemeYPasswordPolicy(t *testing.T) {
	cfg := loadConfig(t, map[string]string{})
	assert.IsType(t, auth.EmailTokens{}, bootstrap.TokenScheme(cfg))
	assert.IsType(t, auth.PlainPasswords{}, bootstrap.PasswordPolicy(cfg.Auth))

	cfg = loadConfig(t, map[string]string{
		"AUTH_TOKEN_SCHEME": "jwt", "JWT_SECRET": "s3cret", "AUTH_PASSWORD_HASHING": "bcrypt",
	})
	tokens, ok := bootstrap.TokenScheme(cfg).(auth.JWTTokens)
	require.True(t, ok)
	assert.Equal(t, "s3cret", tokens.Secret)
	assert.False(t, bootstrap.PasswordPolicy(cfg.Auth).Reveals())
}
