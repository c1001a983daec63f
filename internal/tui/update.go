package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyTab:
			if m.mode == ModeStyle {
				m.mode = ModeLinkify
				m.input.Placeholder = "Read our privacy policy"
			} else {
				m.mode = ModeStyle
				m.input.Placeholder = "button.primary w-full"
			}
			m.refresh()
			return m, nil
		case tea.KeyEnter:
			if m.mode == ModeStyle && len(m.suggestions) > 0 {
				m.input.SetValue(completeLastToken(m.input.Value(), m.suggestions[0]))
				m.input.CursorEnd()
				m.refresh()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) refresh() {
	value := m.input.Value()

	if m.mode == ModeLinkify {
		m.segments = m.linker.Linkify(value)
		m.result = ""
		m.suggestions = nil
		return
	}

	m.segments = nil
	m.result = m.resolver.Combine(strings.Fields(value)...)
	m.suggestions = suggest(m.paths, lastToken(value))
}

func lastToken(value string) string {
	if value == "" || strings.HasSuffix(value, " ") {
		return ""
	}
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func suggest(paths []string, prefix string) []string {
	if prefix == "" {
		return nil
	}
	var out []string
	for _, path := range paths {
		if strings.HasPrefix(path, prefix) && path != prefix {
			out = append(out, path)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

func completeLastToken(value, completion string) string {
	idx := strings.LastIndex(value, " ")
	return value[:idx+1] + completion
}
