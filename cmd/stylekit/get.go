package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type getOptions struct {
	size   string
	strict bool
}

func newGetCmd(root *rootFlags) *cobra.Command {
	opts := &getOptions{}

	cmd := &cobra.Command{
		Use:   "get <category> [variant]",
		Short: "Resolve the classes for a category and variant",
		Long: `Resolve table[category][variant]. The variant defaults to "default", and a
dotted category such as "button.primary" is split into category and variant.
Unresolved styles go through the fallback table unless --strict is set.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			return runGet(cmd, app, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.size, "size", "", "Size key nested under the variant (e.g. small, large)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail instead of using fallbacks")

	return cmd
}

func runGet(cmd *cobra.Command, app *AppContext, opts *getOptions, args []string) error {
	category := args[0]
	variant := ""
	if len(args) > 1 {
		variant = args[1]
	}

	var value string
	switch {
	case opts.strict && opts.size != "":
		resolved, err := app.Resolver.LookupSized(category, variant, opts.size)
		if err != nil {
			return newCommandError("resolve style", category, err, "Run 'stylekit list' to see the available paths.")
		}
		value = resolved
	case opts.strict:
		resolved, err := app.Resolver.Lookup(category, variant)
		if err != nil {
			return newCommandError("resolve style", category, err, "Run 'stylekit list' to see the available paths.")
		}
		value = resolved
	case opts.size != "":
		value = app.Resolver.Sized(category, variant, opts.size)
	default:
		value = app.Resolver.Get(category, variant)
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
