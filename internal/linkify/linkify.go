// Package linkify turns plain text into text and link segments using a
// phrase to destination mapping.
//
// Phrases match case-insensitively and only on word boundaries, so "cat"
// never links inside "catastrophe". Longer phrases are applied first and the
// spans they claim are never re-examined, which gives "privacy policy"
// precedence over "privacy". Phrases of equal length keep their input order.
package linkify

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Mapping associates a phrase with a destination identifier.
type Mapping struct {
	Phrase      string `json:"phrase" yaml:"phrase"`
	Destination string `json:"destination" yaml:"destination"`
}

// FromMap converts a phrase map into mappings ordered by phrase so results do
// not depend on map iteration order.
func FromMap(m map[string]string) []Mapping {
	phrases := make([]string, 0, len(m))
	for phrase := range m {
		phrases = append(phrases, phrase)
	}
	sort.Strings(phrases)

	mappings := make([]Mapping, 0, len(phrases))
	for _, phrase := range phrases {
		mappings = append(mappings, Mapping{Phrase: phrase, Destination: m[phrase]})
	}
	return mappings
}

type phraseMatcher struct {
	mapping Mapping
	re      *regexp.Regexp
}

// Linker holds compiled phrase matchers for one set of mappings. It is safe
// for concurrent use.
type Linker struct {
	matchers []phraseMatcher
	cache    *Cache
}

// New compiles mappings, longest phrase first. Mappings with a blank phrase
// or destination are skipped.
func New(mappings []Mapping) *Linker {
	usable := make([]Mapping, 0, len(mappings))
	for _, m := range mappings {
		if strings.TrimSpace(m.Phrase) == "" || strings.TrimSpace(m.Destination) == "" {
			continue
		}
		usable = append(usable, m)
	}

	sort.SliceStable(usable, func(i, j int) bool {
		return utf8.RuneCountInString(usable[i].Phrase) > utf8.RuneCountInString(usable[j].Phrase)
	})

	matchers := make([]phraseMatcher, 0, len(usable))
	for _, m := range usable {
		re, err := compilePhrase(m.Phrase)
		if err != nil {
			continue
		}
		matchers = append(matchers, phraseMatcher{mapping: m, re: re})
	}

	return &Linker{matchers: matchers}
}

// WithCache enables memoization of up to limit distinct texts.
func (l *Linker) WithCache(limit int) *Linker {
	l.cache = NewCache(limit)
	return l
}

// Mappings returns the active mappings in application order.
func (l *Linker) Mappings() []Mapping {
	mappings := make([]Mapping, len(l.matchers))
	for i, m := range l.matchers {
		mappings[i] = m.mapping
	}
	return mappings
}

// Linkify splits text into segments. Empty text yields a single empty text
// segment.
func (l *Linker) Linkify(text string) []Segment {
	if text == "" {
		return []Segment{TextSegment("")}
	}

	if l.cache != nil {
		if cached, ok := l.cache.Get(text); ok {
			return cached
		}
	}

	segments := []Segment{TextSegment(text)}
	for _, m := range l.matchers {
		segments = m.apply(segments)
	}

	if l.cache != nil {
		l.cache.Set(text, segments)
	}
	return segments
}

// apply links every match of the phrase inside the remaining text segments.
func (m phraseMatcher) apply(in []Segment) []Segment {
	out := make([]Segment, 0, len(in))
	for _, seg := range in {
		if seg.IsLink() {
			out = append(out, seg)
			continue
		}

		matches := m.re.FindAllStringIndex(seg.Value, -1)
		if len(matches) == 0 {
			out = append(out, seg)
			continue
		}

		last := 0
		for _, match := range matches {
			if match[0] > last {
				out = append(out, TextSegment(seg.Value[last:match[0]]))
			}
			out = append(out, LinkSegment(m.mapping.Destination, seg.Value[match[0]:match[1]]))
			last = match[1]
		}
		if last < len(seg.Value) {
			out = append(out, TextSegment(seg.Value[last:]))
		}
	}
	return out
}

// Linkify is the stateless form of Linker.Linkify.
func Linkify(text string, mappings []Mapping) []Segment {
	return New(mappings).Linkify(text)
}

// LinkifyValue linkifies content when it is a string. Nil yields a single
// empty text segment; any other value is returned unchanged, formatted, as
// a single text segment.
func LinkifyValue(content any, mappings []Mapping) []Segment {
	switch v := content.(type) {
	case nil:
		return []Segment{TextSegment("")}
	case string:
		return Linkify(v, mappings)
	case *string:
		if v == nil {
			return []Segment{TextSegment("")}
		}
		return Linkify(*v, mappings)
	default:
		return []Segment{TextSegment(fmt.Sprint(v))}
	}
}
