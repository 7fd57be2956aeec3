package markup

import (
	"regexp"
	"strings"
)

// RefMarker prefixes a cross-reference inside free text.
const RefMarker = "##"

var schemeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// Span is one whitespace-separated word of free text. When Target is set the
// word is a cross-reference and Text holds whatever preceded the marker.
type Span struct {
	Text     string
	Target   string
	External bool
}

// IsRef reports whether the span is a cross-reference.
func (s Span) IsRef() bool { return s.Target != "" }

// SplitRefs splits free text on whitespace and classifies each word.
// Original spacing is not preserved.
func SplitRefs(text string) []Span {
	words := strings.Fields(text)
	spans := make([]Span, 0, len(words))
	for _, w := range words {
		i := strings.Index(w, RefMarker)
		if i < 0 || i+len(RefMarker) == len(w) {
			spans = append(spans, Span{Text: w})
			continue
		}
		target := w[i+len(RefMarker):]
		spans = append(spans, Span{Text: w[:i], Target: target, External: IsExternal(target)})
	}
	return spans
}

// IsExternal reports whether target starts with a URI scheme.
func IsExternal(target string) bool {
	return schemeRe.MatchString(target) || strings.HasPrefix(strings.ToLower(target), "mailto:")
}
