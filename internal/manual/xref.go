package manual

import (
	"strings"

	"sar2tools/internal/markup"
)

// Resolve rewrites ##name cross-references in free text into links. Names
// carrying a URI scheme become external links opening a new browsing
// context; everything else links to a same-document anchor. Words are
// rejoined with single spaces.
func Resolve(text string) string {
	spans := markup.SplitRefs(text)
	words := make([]string, len(spans))
	for i, s := range spans {
		switch {
		case !s.IsRef():
			words[i] = s.Text
		case s.External:
			words[i] = s.Text + "<a href='" + s.Target + "' target='_blank'>" + s.Target + "</a>"
		default:
			words[i] = s.Text + "<a href='#" + s.Target + "'>" + s.Target + "</a>"
		}
	}
	return strings.Join(words, " ")
}

// DanglingRef is an internal cross-reference whose target is not an anchor
// of the document.
type DanglingRef struct {
	Record string `json:"record"`
	Target string `json:"target"`
}

// DanglingRefs lists internal references that point at no known anchor.
func DanglingRefs(records []markup.Record) []DanglingRef {
	anchors := map[string]bool{}
	for _, e := range BuildIndex(records) {
		anchors[e.Anchor] = true
	}
	var out []DanglingRef
	for _, r := range records {
		for _, s := range r.Sections {
			if !hasFreeText(s.Kind) {
				continue
			}
			for _, f := range s.Fields {
				for _, sp := range markup.SplitRefs(f) {
					if sp.IsRef() && !sp.External && !anchors[sp.Target] {
						out = append(out, DanglingRef{Record: r.Anchor(), Target: sp.Target})
					}
				}
			}
		}
	}
	return out
}

func hasFreeText(k markup.SectionKind) bool {
	switch k {
	case markup.SectionSeeAlso, markup.SectionDescription, markup.SectionArguments, markup.SectionExample:
		return true
	}
	return false
}
