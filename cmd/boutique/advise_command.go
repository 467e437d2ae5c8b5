package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdviseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "advise",
		Short: "Get a styling suggestion for the cart contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			reqCtx := requestContext(cmd)
			sess, cleanup, err := ctx.loadedStorefront(reqCtx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), sess.Advise(reqCtx))
			return nil
		},
	}
}
