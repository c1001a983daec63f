package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, titleStyle.Render("stylekit • preview"), m.tabs(), m.input.View())

	if m.mode == ModeLinkify {
		sections = append(sections, sectionStyle.Render("Rendered"))
		if strings.TrimSpace(m.input.Value()) == "" {
			sections = append(sections, emptyStyle.Render("type some text"))
		} else {
			sections = append(sections, RenderSegments(m.segments))
		}
	} else {
		sections = append(sections, sectionStyle.Render("Classes"))
		if m.result == "" {
			sections = append(sections, emptyStyle.Render("(empty)"))
		} else {
			sections = append(sections, resultStyle.Render(m.result))
		}
		if len(m.suggestions) > 0 {
			sections = append(sections, sectionStyle.Render("Paths"))
			lines := make([]string, 0, len(m.suggestions))
			for _, s := range m.suggestions {
				lines = append(lines, suggestionStyle.Render("  "+s))
			}
			sections = append(sections, strings.Join(lines, "\n"))
		}
	}

	sections = append(sections, helpStyle.Render("tab switch mode • enter complete path • esc quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) tabs() string {
	render := func(mode Mode) string {
		if m.mode == mode {
			return activeTabStyle.Render(mode.String())
		}
		return inactiveTabStyle.Render(mode.String())
	}
	return render(ModeStyle) + "  " + render(ModeLinkify)
}
