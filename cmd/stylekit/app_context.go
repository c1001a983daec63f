package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/linkify"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/variants"
)

const defaultLogLevel = "warn"

// AppContext bundles the services a command needs, built from one style document.
type AppContext struct {
	Document *config.Document
	Table    variants.Node
	Logger   *logger.Logger
	Resolver *variants.Resolver
	Linker   *linkify.Linker
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	doc, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("load style document", configSource(flags.configPath), err, "Run 'stylekit check' to list every problem in the document.")
	}

	log, err := logger.New(logger.Options{
		Level:         effectiveLogLevel(flags, doc),
		HumanReadable: doc.Logging.HumanReadable || supportsUnicode(cmd.ErrOrStderr()),
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError("configure logging", "parsing --log-level", err, "Use one of debug, info, warn or error.")
	}

	table, err := doc.Table()
	if err != nil {
		return nil, newCommandError("load style document", configSource(flags.configPath), err, "Style values must be strings or nested mappings.")
	}

	log.WithFields(map[string]any{
		"source": configSource(flags.configPath),
		"links":  len(doc.Links),
	}).Info("style document loaded")

	return &AppContext{
		Document: doc,
		Table:    table,
		Logger:   log,
		Resolver: variants.New(table, variants.Options{Logger: log, Fallbacks: doc.Fallbacks}),
		Linker:   linkify.New(doc.Mappings()).WithCache(linkify.DefaultCacheLimit),
	}, nil
}

// effectiveLogLevel prefers --verbose, then --log-level, then the document.
func effectiveLogLevel(flags *rootFlags, doc *config.Document) string {
	if flags.verbose {
		return "debug"
	}
	if level := strings.TrimSpace(flags.logLevel); level != "" {
		return level
	}
	if doc != nil && doc.Logging.Level != "" {
		return doc.Logging.Level
	}
	return defaultLogLevel
}

func configSource(path string) string {
	if path == "" {
		return "built-in style document"
	}
	return path
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
