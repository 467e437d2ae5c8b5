package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smartboutique/internal/admin"
	"smartboutique/internal/session"
)

func newAdminCommand(ctx *commandContext) *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Back-office views (admin role required)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if parent := cmd.Root(); parent.PersistentPreRunE != nil {
				if err := parent.PersistentPreRunE(cmd, args); err != nil {
					return err
				}
			}
			manager, err := ctx.sessionManager()
			if err != nil {
				return err
			}
			_, err = manager.RequireRole(session.RoleAdmin)
			return err
		},
	}

	adminCmd.AddCommand(&cobra.Command{
		Use:   "products",
		Short: "Show the product management table",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, p := range admin.Products() {
				rows = append(rows, []string{
					fmt.Sprintf("%d", p.ID), p.Nombre, formatPrice(p.Precio), fmt.Sprintf("%d", p.Stock),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Product", "Price", "Stock"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	})

	adminCmd.AddCommand(&cobra.Command{
		Use:   "users",
		Short: "Show the user management table",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, u := range admin.Users() {
				rows = append(rows, []string{
					fmt.Sprintf("%d", u.ID), u.Nombre, u.Email, u.Rol,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Email", "Role"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	})

	adminCmd.AddCommand(&cobra.Command{
		Use:   "reports",
		Short: "Show the monthly sales report",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, r := range admin.Reports() {
				rows = append(rows, []string{
					r.Mes, fmt.Sprintf("%d", r.Ventas), formatPrice(r.Ingresos),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Month", "Sales", "Revenue"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			return nil
		},
	})

	return adminCmd
}
