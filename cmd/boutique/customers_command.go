package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCustomersCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "customers",
		Short: "List customers available for checkout",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cleanup, err := ctx.loadedStorefront(requestContext(cmd))
			if err != nil {
				return err
			}
			defer cleanup()

			customers := sess.Catalog().Customers()
			if jsonOut {
				return writeJSON(cmd, customers)
			}

			selected, hasSelection := sess.Catalog().SelectedCustomer()
			rows := make([][]string, 0, len(customers))
			for _, customer := range customers {
				marker := ""
				if hasSelection && customer.ID == selected.ID {
					marker = "*"
				}
				rows = append(rows, []string{
					marker,
					fmt.Sprintf("%d", customer.ID),
					customer.Nombre,
					customer.Email,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"", "ID", "Name", "Email"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
			))
			fmt.Fprintln(out, "* default customer for checkout (override with `boutique checkout --customer <id>`)")
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the customer list as JSON")
	return cmd
}
