package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/linkify"
)

func typeText(m Model, text string) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

func TestUpdateCombinesTypedTokens(t *testing.T) {
	m := typeText(newTestModel(), "button.ghost mt-2")
	require.Equal(t, "btn btn-ghost mt-2", m.Result())
}

func TestUpdateSuggestsPaths(t *testing.T) {
	m := typeText(newTestModel(), "button.pr")
	require.Equal(t, []string{"button.primary.default", "button.primary.small"}, m.Suggestions())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.Equal(t, "btn btn-primary", m.Result())
	require.Empty(t, m.Suggestions())
}

func TestUpdateSuggestionsTrackLastToken(t *testing.T) {
	m := typeText(newTestModel(), "w-full ca")
	require.Equal(t, []string{"card"}, m.Suggestions())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.Equal(t, "w-full card", m.input.Value())
}

func TestUpdateTabSwitchesToLinkify(t *testing.T) {
	m := newTestModel()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Nil(t, cmd)
	m = updated.(Model)
	require.Equal(t, ModeLinkify, m.Mode())

	m = typeText(m, "Read our privacy policy")
	require.Equal(t, []linkify.Segment{
		linkify.TextSegment("Read our "),
		linkify.LinkSegment("/privacy", "privacy policy"),
	}, m.Segments())
	require.Empty(t, m.Result())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	require.Equal(t, ModeStyle, m.Mode())
	require.Nil(t, m.Segments())
}

func TestUpdateQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := newTestModel()
		updated, cmd := m.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		m = updated.(Model)
		require.True(t, m.Quitting())
		require.Empty(t, m.View())
	}
}

func TestLastToken(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", lastToken(""))
	require.Equal(t, "", lastToken("button "))
	require.Equal(t, "card", lastToken("button card"))
	require.Equal(t, "a b", completeLastToken("a x", "b"))
	require.Equal(t, "full", completeLastToken("fu", "full"))
}
