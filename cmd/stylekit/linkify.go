package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/linkify"
	"github.com/alexisbeaulieu97/stylekit/internal/tui"
)

type linkifyOptions struct {
	jsonOutput bool
}

func newLinkifyCmd(root *rootFlags) *cobra.Command {
	opts := &linkifyOptions{}

	cmd := &cobra.Command{
		Use:   "linkify [text...]",
		Short: "Turn known phrases in text into links",
		Long: `Split text into plain and link segments using the document's phrase table.
Arguments are joined with spaces; with no arguments the text is read from stdin.
Terminal output is styled, anything else is written as markdown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := linkifyInput(cmd, args)
			if err != nil {
				return newCommandError("linkify", "reading input", err, "Pass the text as arguments or pipe it on stdin.")
			}

			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}

			segments := app.Linker.Linkify(text)
			app.Logger.WithFields(map[string]any{
				"segments": len(segments),
				"links":    len(linkify.Links(segments)),
			}).Debug("text linkified")

			switch {
			case opts.jsonOutput:
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(segments)
			case supportsUnicode(cmd.OutOrStdout()):
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSegments(segments))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), linkify.Markdown(segments))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output segments as JSON")

	return cmd
}

func linkifyInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
