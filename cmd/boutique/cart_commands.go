package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"smartboutique/internal/storefront"
)

func newCartCommand(ctx *commandContext) *cobra.Command {
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and edit the shopping cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCartShow(ctx, cmd)
		},
	}

	cartCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the cart contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCartShow(ctx, cmd)
		},
	})

	cartCmd.AddCommand(&cobra.Command{
		Use:   "add <product-id>",
		Short: "Add one unit of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := parseID(args[0], "product id")
			if err != nil {
				return err
			}
			return withCart(ctx, cmd, func(sess *storefront.Session) error {
				return sess.AddToCart(requestContext(cmd), productID)
			})
		},
	})

	cartCmd.AddCommand(&cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := parseID(args[0], "product id")
			if err != nil {
				return err
			}
			return withCart(ctx, cmd, func(sess *storefront.Session) error {
				sess.RemoveFromCart(requestContext(cmd), productID)
				return nil
			})
		},
	})

	cartCmd.AddCommand(&cobra.Command{
		Use:   "set <product-id> <quantity>",
		Short: "Set a product's quantity (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := parseID(args[0], "product id")
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			return withCart(ctx, cmd, func(sess *storefront.Session) error {
				sess.SetQuantity(requestContext(cmd), productID, qty)
				return nil
			})
		},
	})

	cartCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCart(ctx, cmd, func(sess *storefront.Session) error {
				sess.ClearCart(requestContext(cmd))
				return nil
			})
		},
	})

	return cartCmd
}

// withCart loads the storefront, applies one cart operation, and prints the
// resulting status plus cart summary.
func withCart(ctx *commandContext, cmd *cobra.Command, fn func(*storefront.Session) error) error {
	sess, cleanup, err := ctx.loadedStorefront(requestContext(cmd))
	if err != nil {
		return err
	}
	defer cleanup()

	if err := fn(sess); err != nil {
		return err
	}
	printStatus(cmd.OutOrStdout(), sess.Status())
	printCart(cmd, sess)
	return nil
}

func runCartShow(ctx *commandContext, cmd *cobra.Command) error {
	sess, cleanup, err := ctx.loadedStorefront(requestContext(cmd))
	if err != nil {
		return err
	}
	defer cleanup()

	printCart(cmd, sess)
	return nil
}

func printCart(cmd *cobra.Command, sess *storefront.Session) {
	out := cmd.OutOrStdout()
	lines := sess.Cart().Lines()
	if len(lines) == 0 {
		fmt.Fprintln(out, "Your cart is empty.")
		return
	}
	fmt.Fprintln(out, renderTable(
		[]string{"ID", "Product", "Qty", "Price", "Subtotal"},
		cartRows(lines),
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight},
	))
	fmt.Fprintf(out, "Total: Bs. %s (%d items)\n", sess.Cart().Total(), sess.Cart().ItemCount())
}

func parseID(raw, label string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s %q", label, raw)
	}
	return id, nil
}
