package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newWhenCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "when <true|false> <category> <variant> [category variant]",
		Short: "Pick between two styles based on a condition",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 && len(args) != 5 {
				return fmt.Errorf("accepts 3 or 5 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			condition, err := strconv.ParseBool(args[0])
			if err != nil {
				return newCommandError("evaluate condition", args[0], err, "Pass true or false as the first argument.")
			}

			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}

			var categoryB, variantB string
			if len(args) == 5 {
				categoryB, variantB = args[3], args[4]
			}

			fmt.Fprintln(cmd.OutOrStdout(), app.Resolver.When(condition, args[1], args[2], categoryB, variantB))
			return nil
		},
	}

	return cmd
}
