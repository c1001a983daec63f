package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stylekit",
		Short:         "Stylekit resolves component style variants and links known phrases",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a style document (defaults to the built-in one)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newGetCmd(flags))
	cmd.AddCommand(newPathCmd(flags))
	cmd.AddCommand(newCombineCmd(flags))
	cmd.AddCommand(newWhenCmd(flags))
	cmd.AddCommand(newHasCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newLinkifyCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
