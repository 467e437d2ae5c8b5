package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	var categoryID int64
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the products on offer",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cleanup, err := ctx.loadedStorefront(requestContext(cmd))
			if err != nil {
				return err
			}
			defer cleanup()

			products := sess.Catalog().FilterByCategory(categoryID)
			if jsonOut {
				return writeJSON(cmd, products)
			}

			out := cmd.OutOrStdout()
			if len(products) == 0 {
				fmt.Fprintln(out, "No products in this category.")
				return nil
			}

			rows := make([][]string, 0, len(products))
			for _, p := range products {
				rows = append(rows, []string{
					fmt.Sprintf("%d", p.ID),
					p.Nombre,
					formatPrice(float64(p.Precio)),
					fmt.Sprintf("%d", p.Stock),
					displayTitle(p.Categoria.Nombre),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Product", "Price", "Stock", "Category"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().Int64Var(&categoryID, "category", 0, "Only list products in this category id (0 shows all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the product list as JSON")
	return cmd
}
