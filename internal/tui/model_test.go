package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/linkify"
	"github.com/alexisbeaulieu97/stylekit/internal/variants"
)

func newTestModel() Model {
	table := variants.Branch(map[string]variants.Node{
		"button": variants.Branch(map[string]variants.Node{
			"primary": variants.Branch(map[string]variants.Node{
				"default": variants.Text("btn btn-primary"),
				"small":   variants.Text("btn btn-primary btn-sm"),
			}),
			"ghost": variants.Text("btn btn-ghost"),
		}),
		"card": variants.Text("card"),
	})
	resolver := variants.New(table, variants.Options{})
	linker := linkify.New([]linkify.Mapping{
		{Phrase: "privacy policy", Destination: "/privacy"},
		{Phrase: "privacy", Destination: "/p"},
	})
	return NewModel(resolver, linker)
}

func TestNewModelStartsInStyleMode(t *testing.T) {
	m := newTestModel()
	require.Equal(t, ModeStyle, m.Mode())
	require.Empty(t, m.Result())
	require.Empty(t, m.Suggestions())
	require.False(t, m.Quitting())
	require.NotNil(t, m.Init())
}

func TestModeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Styles", ModeStyle.String())
	require.Equal(t, "Linkify", ModeLinkify.String())
}
