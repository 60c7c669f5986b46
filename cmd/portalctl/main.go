package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/portal-rrhh/internal/bootstrap"
	"github.com/jhoicas/portal-rrhh/internal/cli"
	"github.com/jhoicas/portal-rrhh/pkg/config"
	"github.com/jhoicas/portal-rrhh/pkg/logger"
)

func main() {
	open := func(ctx context.Context) (*bootstrap.Services, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("cargar configuración: %w", err)
		}
		log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})
		return bootstrap.New(ctx, cfg, log)
	}
	if err := cli.NewRootCommand(open).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
