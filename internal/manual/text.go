package manual

import (
	"html"
	"regexp"
	"strings"

	"sar2tools/internal/markup"
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

// Block is a section prepared for non-HTML output. Lines keep their
// cross-reference markers so callers can decide how to present them.
type Block struct {
	Heading string
	Kind    markup.SectionKind
	Lines   []string
}

// Blocks flattens a record into headed blocks of text lines.
func Blocks(r markup.Record) []Block {
	out := make([]Block, 0, len(r.Sections))
	for _, s := range r.Sections {
		b := Block{Heading: s.Tag, Kind: s.Kind}
		switch s.Kind {
		case markup.SectionSeeAlso:
			b.Lines = []string{"See " + strings.Join(s.Fields, " ")}
		case markup.SectionContext:
			b.Lines = []string{strings.Join(ContextLabels(strings.Join(s.Fields, " ")), ", ")}
		case markup.SectionArguments:
			for _, f := range s.Fields {
				name, desc := SplitArgument(f)
				b.Lines = append(b.Lines, name+"\t"+desc)
			}
		case markup.SectionError:
			b.Heading = "UNKNOWN ARGUMENT"
			b.Lines = []string{s.Tag}
		default:
			b.Lines = s.Fields
		}
		out = append(out, b)
	}
	return out
}

// Plain strips inline HTML and entities from a source line and drops
// cross-reference markers.
func Plain(line string) string {
	spans := markup.SplitRefs(line)
	words := make([]string, len(spans))
	for i, s := range spans {
		words[i] = s.Text + s.Target
	}
	text := tagRe.ReplaceAllString(strings.Join(words, " "), "")
	return strings.ReplaceAll(html.UnescapeString(text), "\u00a0", " ")
}

// PlainText renders a record as indented plain text.
func PlainText(r markup.Record) string {
	var b strings.Builder
	for _, blk := range Blocks(r) {
		b.WriteString(blk.Heading + "\n")
		for _, l := range blk.Lines {
			if blk.Kind == markup.SectionSynopsis {
				b.WriteString("    " + plainSynopsis(l) + "\n")
				continue
			}
			b.WriteString("    " + Plain(l) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func plainSynopsis(line string) string {
	return Plain(strings.NewReplacer("<b>", "", "</b>", "").Replace(Synopsis(line)))
}
