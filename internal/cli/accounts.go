package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/portal-rrhh/internal/application/usecase"
	"github.com/jhoicas/portal-rrhh/internal/bootstrap"
)

// NewAccountsCommand crea el grupo accounts.
func NewAccountsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Gestión de cuentas",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Lista las cuentas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, rootOpts, func(ctx context.Context, svc *bootstrap.Services) error {
				list, err := svc.AccountUC.List(ctx)
				if err != nil {
					return err
				}
				return output(cmd.OutOrStdout(), rootOpts.Format, list, func(w io.Writer) error {
					tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "EMAIL\tNOMBRE\tROL\tVERIFICADA")
					for _, a := range list {
						fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", a.Email, a.DisplayName, a.Role, a.Verified)
					}
					return tw.Flush()
				})
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "verify <email>",
		Short: "Marca una cuenta como verificada",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, rootOpts, func(ctx context.Context, svc *bootstrap.Services) error {
				acc, err := svc.AccountUC.VerifyByEmail(ctx, args[0])
				if err != nil {
					return fmt.Errorf("verificar %s: %w", args[0], err)
				}
				resp := usecase.ToAccountResponse(acc)
				return output(cmd.OutOrStdout(), rootOpts.Format, resp, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "Cuenta %s verificada\n", resp.Email)
					return err
				})
			})
		},
	})
	return cmd
}
