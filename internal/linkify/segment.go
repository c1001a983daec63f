package linkify

import (
	"encoding/json"
	"strings"
)

// Kind distinguishes plain text from linked text.
type Kind string

const (
	KindText Kind = "text"
	KindLink Kind = "link"
)

// Segment is one piece of linkified output. Text segments carry Value; link
// segments carry Destination and Label, where Label is the matched source
// text with its original casing.
type Segment struct {
	Kind        Kind
	Value       string
	Destination string
	Label       string
}

// TextSegment returns a plain text segment.
func TextSegment(value string) Segment {
	return Segment{Kind: KindText, Value: value}
}

// LinkSegment returns a link segment.
func LinkSegment(destination, label string) Segment {
	return Segment{Kind: KindLink, Destination: destination, Label: label}
}

// IsLink reports whether the segment is a link.
func (s Segment) IsLink() bool {
	return s.Kind == KindLink
}

// Content returns the visible text of the segment.
func (s Segment) Content() string {
	if s.IsLink() {
		return s.Label
	}
	return s.Value
}

type textJSON struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
}

type linkJSON struct {
	Kind        Kind   `json:"kind"`
	Destination string `json:"destination"`
	Label       string `json:"label"`
}

// MarshalJSON encodes the segment as {"kind":"text","value":...} or
// {"kind":"link","destination":...,"label":...}.
func (s Segment) MarshalJSON() ([]byte, error) {
	if s.IsLink() {
		return json.Marshal(linkJSON{Kind: KindLink, Destination: s.Destination, Label: s.Label})
	}
	return json.Marshal(textJSON{Kind: KindText, Value: s.Value})
}

// UnmarshalJSON decodes either segment shape.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind        Kind   `json:"kind"`
		Value       string `json:"value"`
		Destination string `json:"destination"`
		Label       string `json:"label"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Kind == KindLink {
		*s = LinkSegment(raw.Destination, raw.Label)
		return nil
	}
	*s = TextSegment(raw.Value)
	return nil
}

// Text concatenates the visible content of every segment. For any Linkify
// output it reproduces the input text exactly.
func Text(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Content())
	}
	return b.String()
}

// Links returns only the link segments, in order.
func Links(segments []Segment) []Segment {
	var links []Segment
	for _, seg := range segments {
		if seg.IsLink() {
			links = append(links, seg)
		}
	}
	return links
}

// Markdown renders link segments as [label](destination).
func Markdown(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.IsLink() {
			b.WriteString("[")
			b.WriteString(seg.Label)
			b.WriteString("](")
			b.WriteString(seg.Destination)
			b.WriteString(")")
			continue
		}
		b.WriteString(seg.Value)
	}
	return b.String()
}
