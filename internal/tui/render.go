package tui

import (
	"strings"

	"github.com/alexisbeaulieu97/stylekit/internal/linkify"
)

// RenderSegments styles link segments for a terminal and follows each with
// its destination.
func RenderSegments(segments []linkify.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if !seg.IsLink() {
			b.WriteString(seg.Value)
			continue
		}
		b.WriteString(linkStyle.Render(seg.Label))
		b.WriteString(destinationStyle.Render(" → " + seg.Destination))
	}
	return b.String()
}
