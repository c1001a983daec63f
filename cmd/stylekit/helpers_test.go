package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testDocument = `version: "1.0"
name: test
styles:
  button:
    default: "btn"
    primary:
      default: "btn btn-primary"
      small: "btn btn-primary btn-sm"
    ghost: "btn btn-ghost"
  card: "card"
  badge:
    success: "badge badge-success"
fallbacks:
  tabs.default: "tabs"
links:
  privacy policy: /privacy
  privacy: /p
  pricing: /pricing
logging:
  level: warn
`

func writeDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	root.SetIn(stdin)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
