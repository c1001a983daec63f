package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
)

func newCheckCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Validate a style document and report every problem",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.configPath
			if len(args) > 0 {
				path = args[0]
			}
			source := configSource(path)

			doc, err := config.Load(path)
			if err != nil {
				problems := config.Problems(err)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s has %d problem(s):\n", source, len(problems))
				for _, problem := range problems {
					fmt.Fprintf(out, "  - %v\n", problem)
				}
				return newCommandError("check style document", source, err, "Fix the listed problems and run 'stylekit check' again.")
			}

			marker := "[OK]"
			if supportsUnicode(cmd.OutOrStdout()) {
				marker = "✓"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is valid: %d categories, %d fallbacks, %d links\n",
				marker, source, len(doc.Styles), len(doc.Fallbacks), len(doc.Links))
			return nil
		},
	}

	return cmd
}
