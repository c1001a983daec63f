package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type listOptions struct {
	jsonOutput bool
	prefix     string
}

func newListCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every style path and its classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			return runList(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Only list paths starting with this prefix")

	return cmd
}

type styleEntry struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

func runList(cmd *cobra.Command, app *AppContext, opts *listOptions) error {
	var entries []styleEntry
	for _, path := range app.Resolver.Paths() {
		if !strings.HasPrefix(path, opts.prefix) {
			continue
		}
		value, err := app.Resolver.LookupPath(path)
		if err != nil {
			app.Logger.WithFields(map[string]any{"path": path}).Error(err, "listed path did not resolve")
			continue
		}
		entries = append(entries, styleEntry{Path: path, Value: value})
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No styles defined.")
		return nil
	}
	return renderListTable(cmd, entries)
}

func renderListTable(cmd *cobra.Command, entries []styleEntry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "PATH\tCLASSES")
	for _, e := range entries {
		fmt.Fprintf(writer, "%s\t%s\n", e.Path, e.Value)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Version string       `json:"version"`
	Count   int          `json:"count"`
	Styles  []styleEntry `json:"styles"`
}

func renderListJSON(cmd *cobra.Command, entries []styleEntry) error {
	payload := listJSONPayload{
		Version: "1.0",
		Count:   len(entries),
		Styles:  entries,
	}
	if payload.Styles == nil {
		payload.Styles = []styleEntry{}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
