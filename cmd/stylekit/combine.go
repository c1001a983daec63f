package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCombineCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine <token>...",
		Short: "Join style paths and literal classes into one class string",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Resolver.Combine(args...))
			return nil
		},
	}

	return cmd
}
