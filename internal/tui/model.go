package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stylekit/internal/linkify"
	"github.com/alexisbeaulieu97/stylekit/internal/variants"
)

// Mode selects what the preview does with the input line.
type Mode int

const (
	// ModeStyle combines the input tokens through the resolver.
	ModeStyle Mode = iota
	// ModeLinkify linkifies the input text.
	ModeLinkify
)

func (m Mode) String() string {
	if m == ModeLinkify {
		return "Linkify"
	}
	return "Styles"
}

const maxSuggestions = 8

// Model contains the Bubbletea state for the style preview.
type Model struct {
	resolver    *variants.Resolver
	linker      *linkify.Linker
	input       textinput.Model
	mode        Mode
	paths       []string
	result      string
	suggestions []string
	segments    []linkify.Segment
	quitting    bool
}

// NewModel constructs a preview over the supplied resolver and linker.
func NewModel(resolver *variants.Resolver, linker *linkify.Linker) Model {
	input := textinput.New()
	input.Placeholder = "button.primary w-full"
	input.Prompt = "› "
	input.CharLimit = 512
	input.Focus()

	m := Model{
		resolver: resolver,
		linker:   linker,
		input:    input,
		paths:    resolver.Paths(),
	}
	m.refresh()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Mode returns the active mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Result returns the combined style string for the current input.
func (m Model) Result() string {
	return m.result
}

// Suggestions returns the style paths matching the token being typed.
func (m Model) Suggestions() []string {
	return append([]string(nil), m.suggestions...)
}

// Segments returns the linkified input.
func (m Model) Segments() []linkify.Segment {
	return append([]linkify.Segment(nil), m.segments...)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
