package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func TestGetCommand(t *testing.T) {
	path := writeDocument(t, testDocument)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "category and variant", args: []string{"get", "button", "primary"}, want: "btn btn-primary"},
		{name: "dotted category", args: []string{"get", "button.primary"}, want: "btn btn-primary"},
		{name: "default variant", args: []string{"get", "button"}, want: "btn"},
		{name: "size", args: []string{"get", "button", "primary", "--size", "small"}, want: "btn btn-primary btn-sm"},
		{name: "missing size degrades", args: []string{"get", "button", "ghost", "--size", "large"}, want: "btn btn-ghost"},
		{name: "document fallback", args: []string{"get", "tabs"}, want: "tabs"},
		{name: "built-in fallback", args: []string{"get", "alert"}, want: "relative w-full rounded-lg border p-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, nil, append([]string{"-c", path}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(stdout))
		})
	}
}

func TestGetCommandLogsFallback(t *testing.T) {
	path := writeDocument(t, testDocument)

	stdout, stderr, err := executeCommand(t, nil, "-c", path, "get", "tabs")
	require.NoError(t, err)
	require.Equal(t, "tabs\n", stdout)
	require.Contains(t, stderr, "style not resolved, using fallback")
	require.Contains(t, stderr, "tabs.default")
}

func TestGetCommandLogLevelSilencesWarnings(t *testing.T) {
	path := writeDocument(t, testDocument)

	_, stderr, err := executeCommand(t, nil, "-c", path, "--log-level", "error", "get", "tabs")
	require.NoError(t, err)
	require.Empty(t, stderr)
}

func TestGetCommandStrict(t *testing.T) {
	path := writeDocument(t, testDocument)

	_, _, err := executeCommand(t, nil, "-c", path, "get", "tabs", "--strict")
	require.Error(t, err)
	require.True(t, errors.Is(err, stylekiterrors.ErrStyleNotFound))
	require.Contains(t, err.Error(), "stylekit list")

	_, _, err = executeCommand(t, nil, "-c", path, "get", "button", "ghost", "--size", "small", "--strict")
	require.ErrorIs(t, err, stylekiterrors.ErrStyleNotFound)
}

func TestPathCommand(t *testing.T) {
	path := writeDocument(t, testDocument)

	stdout, _, err := executeCommand(t, nil, "-c", path, "path", "button.primary.small")
	require.NoError(t, err)
	require.Equal(t, "btn btn-primary btn-sm\n", stdout)

	stdout, _, err = executeCommand(t, nil, "-c", path, "path", "button.primary.huge")
	require.NoError(t, err)
	require.Equal(t, "btn btn-primary\n", stdout)

	_, _, err = executeCommand(t, nil, "-c", path, "path", "nothing.here", "--strict")
	require.ErrorIs(t, err, stylekiterrors.ErrStyleNotFound)
}

func TestCombineCommand(t *testing.T) {
	path := writeDocument(t, testDocument)

	stdout, _, err := executeCommand(t, nil, "-c", path, "combine", "button.ghost", "w-1.5", "card", "mt-2")
	require.NoError(t, err)
	require.Equal(t, "btn btn-ghost w-1.5 card mt-2\n", stdout)
}

func TestWhenCommand(t *testing.T) {
	path := writeDocument(t, testDocument)

	stdout, _, err := executeCommand(t, nil, "-c", path, "when", "true", "button", "primary", "badge", "success")
	require.NoError(t, err)
	require.Equal(t, "btn btn-primary\n", stdout)

	stdout, _, err = executeCommand(t, nil, "-c", path, "when", "false", "button", "primary", "badge", "success")
	require.NoError(t, err)
	require.Equal(t, "badge badge-success\n", stdout)

	stdout, _, err = executeCommand(t, nil, "-c", path, "when", "false", "button", "primary")
	require.NoError(t, err)
	require.Equal(t, "\n", stdout)
}

func TestWhenCommandRejectsBadInput(t *testing.T) {
	_, _, err := executeCommand(t, nil, "when", "maybe", "button", "primary")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Pass true or false")

	_, _, err = executeCommand(t, nil, "when", "true", "button")
	require.Error(t, err)
}

func TestHasCommand(t *testing.T) {
	path := writeDocument(t, testDocument)

	stdout, _, err := executeCommand(t, nil, "-c", path, "has", "button", "primary")
	require.NoError(t, err)
	require.Equal(t, "true\n", stdout)

	stdout, _, err = executeCommand(t, nil, "-c", path, "has", "tabs")
	require.NoError(t, err)
	require.Equal(t, "false\n", stdout)
}

func TestCommandsUseBuiltInDocument(t *testing.T) {
	stdout, _, err := executeCommand(t, nil, "has", "carousel", "indicator")
	require.NoError(t, err)
	require.Equal(t, "true\n", stdout)
}

func TestCommandReportsBrokenDocument(t *testing.T) {
	path := writeDocument(t, "version: [\n")

	_, _, err := executeCommand(t, nil, "-c", path, "get", "button")
	require.Error(t, err)

	var parseErr *stylekiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Contains(t, err.Error(), "stylekit check")
}

func TestCommandLogsDocumentLoadAtInfo(t *testing.T) {
	path := writeDocument(t, testDocument)

	_, stderr, err := executeCommand(t, nil, "-c", path, "--log-level", "info", "has", "card")
	require.NoError(t, err)
	require.Contains(t, stderr, "style document loaded")
	require.Contains(t, stderr, `"level":"info"`)

	_, stderr, err = executeCommand(t, nil, "-c", path, "has", "card")
	require.NoError(t, err)
	require.NotContains(t, stderr, "style document loaded")
}
