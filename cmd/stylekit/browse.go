package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/tui"
	"github.com/alexisbeaulieu97/stylekit/internal/variants"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func newBrowseCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Launch the interactive style and link preview",
		Long: `Launch a terminal preview. Type style tokens to see the combined classes,
or press tab to switch to linkify mode and type free text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !supportsUnicode(cmd.OutOrStdout()) {
				return newCommandError("browse", "starting the preview", errNotTerminal, "Run 'stylekit browse' from an interactive terminal.")
			}

			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}

			// Fallback warnings would be written over the preview screen.
			quiet := variants.New(app.Table, variants.Options{Fallbacks: app.Document.Fallbacks})
			program := tea.NewProgram(
				tui.NewModel(quiet, app.Linker),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := program.Run(); err != nil {
				app.Logger.Error(err, "preview exited with error")
				return err
			}
			return nil
		},
	}

	return cmd
}
