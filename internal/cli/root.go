// Package cli implementa portalctl, la herramienta de administración del portal.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jhoicas/portal-rrhh/internal/bootstrap"
)

// Opener abre los servicios del portal sobre el almacenamiento configurado.
type Opener func(ctx context.Context) (*bootstrap.Services, error)

// RootOptions flags globales.
type RootOptions struct {
	Format string // "text" | "json"
	Open   Opener
}

// ValidFormats formatos de salida admitidos.
var ValidFormats = []string{"text", "json"}

// NewRootCommand construye el comando raíz de portalctl.
func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{Open: open}

	cmd := &cobra.Command{
		Use:   "portalctl",
		Short: "Administración del Portal RRHH",
		Long:  "Herramienta de línea de comandos para sembrar el documento, gestionar cuentas e importar o exportar empleados.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("formato inválido %q: debe ser uno de %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "formato de salida (json|text)")

	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewAccountsCommand(opts))
	cmd.AddCommand(NewEmployeesCommand(opts))

	return cmd
}

// withServices abre los servicios, ejecuta fn y los cierra.
func withServices(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, svc *bootstrap.Services) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, err := opts.Open(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()
	return fn(ctx, svc)
}

// output escribe v como JSON o, en formato texto, delega en text.
func output(w io.Writer, format string, v any, text func(io.Writer) error) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return text(w)
}
