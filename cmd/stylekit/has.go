package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newHasCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "has <category> [variant]",
		Short: "Report whether the style table defines a variant",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}

			variant := ""
			if len(args) > 1 {
				variant = args[1]
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(app.Resolver.Has(args[0], variant)))
			return nil
		},
	}

	return cmd
}
