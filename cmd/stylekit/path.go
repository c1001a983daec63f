package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCmd(root *rootFlags) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "path <dot.path>",
		Short: "Resolve a dot-separated style path of any depth",
		Long: `Walk the style table along a dot-separated path and resolve the deepest node
reached. A branch resolves to its "default" entry.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}

			if !strict {
				fmt.Fprintln(cmd.OutOrStdout(), app.Resolver.Nested(args[0]))
				return nil
			}

			value, err := app.Resolver.LookupPath(args[0])
			if err != nil {
				return newCommandError("resolve style path", args[0], err, "Run 'stylekit list' to see the available paths.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail instead of using fallbacks")

	return cmd
}
