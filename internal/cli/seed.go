package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/portal-rrhh/internal/bootstrap"
	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/document"
)

// SeedResult resultado de seed.
type SeedResult struct {
	Seeded     bool   `json:"seeded"`
	AdminEmail string `json:"adminEmail"`
}

// NewSeedCommand crea el comando seed.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reescribe el documento con los datos iniciales",
		Long: `Reescribe el documento persistido con los datos iniciales: la cuenta Admin
y los departamentos por defecto. Si el documento ya tiene datos se exige --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, rootOpts, func(ctx context.Context, svc *bootstrap.Services) error {
				return runSeed(ctx, svc, force, rootOpts.Format, cmd.OutOrStdout())
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "sobrescribir aunque el documento tenga datos")
	return cmd
}

func runSeed(ctx context.Context, svc *bootstrap.Services, force bool, format string, w io.Writer) error {
	current := svc.DB.Snapshot()
	if !force && hasData(current) {
		return fmt.Errorf("el documento tiene %d cuentas, %d empleados y %d solicitudes; use --force para sobrescribirlo",
			len(current.Accounts), len(current.Employees), len(current.Requests))
	}
	result := SeedResult{Seeded: true, AdminEmail: document.SeedAdminEmail}
	if err := svc.DB.Replace(ctx, document.Seed()); err != nil {
		if errors.Is(err, domain.ErrStorage) {
			return fmt.Errorf("guardar documento sembrado: %w", err)
		}
		return err
	}
	return output(w, format, result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Documento sembrado. Admin: %s / %s\n", document.SeedAdminEmail, document.SeedAdminPassword)
		return err
	})
}

// hasData indica si el documento tiene algo más que los datos iniciales.
func hasData(doc *entity.Document) bool {
	return len(doc.Accounts) > 1 || len(doc.Employees) > 0 || len(doc.Requests) > 0
}
