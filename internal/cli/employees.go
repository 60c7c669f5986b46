package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/portal-rrhh/internal/bootstrap"
)

// NewEmployeesCommand crea el grupo employees.
func NewEmployeesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Importación y exportación de empleados (XLSX)",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "export <file>",
		Short: "Exporta los empleados a un libro XLSX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, rootOpts, func(ctx context.Context, svc *bootstrap.Services) error {
				data, err := svc.EmployeeUC.Export(ctx)
				if err != nil {
					return err
				}
				if err := os.WriteFile(args[0], data, 0o644); err != nil {
					return fmt.Errorf("escribir %s: %w", args[0], err)
				}
				result := map[string]any{"file": args[0], "bytes": len(data)}
				return output(cmd.OutOrStdout(), rootOpts.Format, result, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "Exportado %s (%d bytes)\n", args[0], len(data))
					return err
				})
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Importa empleados desde un libro XLSX (alta o actualización por employeeId)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, rootOpts, func(ctx context.Context, svc *bootstrap.Services) error {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()

				result, err := svc.EmployeeUC.Import(ctx, f)
				if err != nil {
					return fmt.Errorf("importar %s: %w", args[0], err)
				}
				return output(cmd.OutOrStdout(), rootOpts.Format, result, func(w io.Writer) error {
					fmt.Fprintf(w, "Creados: %d, actualizados: %d, descartados: %d\n",
						result.Created, result.Updated, len(result.Skipped))
					for _, s := range result.Skipped {
						fmt.Fprintf(w, "  fila %d: %s\n", s.Row, s.Reason)
					}
					return nil
				})
			})
		},
	})
	return cmd
}
