package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckoutCommand(ctx *commandContext) *cobra.Command {
	var customerID int64

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Submit the cart as an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			reqCtx := requestContext(cmd)
			sess, cleanup, err := ctx.loadedStorefront(reqCtx)
			if err != nil {
				return err
			}
			defer cleanup()

			if customerID > 0 {
				if err := sess.Catalog().SelectCustomer(customerID); err != nil {
					return err
				}
			}

			if err := sess.Checkout(reqCtx); err != nil {
				printStatus(cmd.OutOrStdout(), sess.Status())
				return err
			}

			out := cmd.OutOrStdout()
			printStatus(out, sess.Status())
			if customer, ok := sess.Catalog().SelectedCustomer(); ok {
				fmt.Fprintf(out, "Order placed for %s.\n", customer.Nombre)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&customerID, "customer", 0, "Customer id to bill (defaults to the first customer)")
	return cmd
}
