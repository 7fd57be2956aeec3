// HTML rendering of parsed manual records
package manual

import (
	"html"
	"strings"

	"sar2tools/internal/markup"
)

// ErrorMarker is rendered in place of every unrecognised tag.
const ErrorMarker = "<h1>UNKNOWN ARGUMENT</h1>"

// MissingNameMarker opens a record that has no identity section.
const MissingNameMarker = "<h1>MISSING NAME</h1>"

const indent = "        "

// RenderRecord renders one record as a <section> element.
func RenderRecord(r markup.Record) string {
	var b strings.Builder
	b.WriteString("      <section id='" + r.Anchor() + "'")
	if classes := r.Classes(); len(classes) > 0 {
		b.WriteString(" class=\"" + strings.Join(classes, " ") + "\"")
	}
	b.WriteString(">\n")
	if len(r.Names) == 0 {
		b.WriteString(indent + MissingNameMarker + "\n")
	}
	for _, s := range r.Sections {
		b.WriteString(renderSection(s))
	}
	b.WriteString(indent + "<br><hr>\n")
	b.WriteString("      </section>\n")
	return b.String()
}

func renderSection(s markup.Section) string {
	switch s.Kind {
	case markup.SectionIdentity:
		return renderIdentity(s)
	case markup.SectionSeeAlso:
		return indent + "<p class='See' >See " + Resolve(strings.Join(s.Fields, " ")) + "</p>\n"
	case markup.SectionSynopsis:
		return renderSynopsis(s)
	case markup.SectionContext:
		return renderContext(s)
	case markup.SectionArguments:
		return renderArguments(s)
	case markup.SectionDescription, markup.SectionExample:
		return renderParagraphs(s)
	default:
		return indent + ErrorMarker + "\n" + indent + "<p class='Error'>" + html.EscapeString(s.Tag) + "</p>\n"
	}
}

func heading(tag string) string {
	return indent + "<h4>" + tag + "</h4>\n"
}

func renderIdentity(s markup.Section) string {
	var b strings.Builder
	b.WriteString(heading(s.Tag))
	for i, name := range s.Fields {
		id := ""
		if i > 0 {
			id = " id='" + name + "'"
		}
		if strings.HasPrefix(name, markup.CaptionPrefix) {
			b.WriteString(indent + "<p" + id + "><i>" + name + "</i></p>\n")
			continue
		}
		b.WriteString(indent + "<p" + id + ">" + name + "</p>\n")
	}
	return b.String()
}

func renderSynopsis(s markup.Section) string {
	var b strings.Builder
	b.WriteString(heading(s.Tag))
	for _, f := range s.Fields {
		b.WriteString(indent + "<p>" + Synopsis(f) + "</p>\n")
	}
	return b.String()
}

// Synopsis renders one usage line: the first token bold, "[" and "]" as
// optional-group brackets, every other token as an argument placeholder.
func Synopsis(line string) string {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<b>" + tokens[0] + "</b>")
	for _, tok := range tokens[1:] {
		switch tok {
		case "[":
			b.WriteString("  [  ")
		case "]":
			b.WriteString("  ]")
		default:
			b.WriteString("  &lt;" + tok + "&gt;")
		}
	}
	return b.String()
}

// ContextLabels returns human readable labels for the codes in a context
// field. Unknown codes are passed through verbatim.
func ContextLabels(field string) []string {
	var labels []string
	seen := map[string]bool{}
	for _, code := range strings.Fields(field) {
		c, ok := markup.LookupContext(code)
		if !ok {
			labels = append(labels, code)
			continue
		}
		if seen[c.Class] {
			continue
		}
		seen[c.Class] = true
		labels = append(labels, c.Label)
	}
	return labels
}

func renderContext(s markup.Section) string {
	return heading(s.Tag) + indent + "<p>" + strings.Join(ContextLabels(strings.Join(s.Fields, " ")), ", ") + "</p>\n"
}

// SplitArgument splits an argument line on its first whitespace into the
// argument name and its description.
func SplitArgument(line string) (name, desc string) {
	line = strings.TrimSpace(line)
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}

func renderArguments(s markup.Section) string {
	var b strings.Builder
	b.WriteString(heading(s.Tag))
	b.WriteString(indent + "<table>\n" + indent + "  <tbody>\n")
	for _, f := range s.Fields {
		name, desc := SplitArgument(f)
		b.WriteString(indent + "    <tr>\n")
		b.WriteString(indent + "      <td>" + name + "</td>\n")
		b.WriteString(indent + "      <td>" + Resolve(desc) + "</td>\n")
		b.WriteString(indent + "    </tr>\n")
	}
	b.WriteString(indent + "  </tbody>\n" + indent + "</table>\n")
	return b.String()
}

func renderParagraphs(s markup.Section) string {
	var b strings.Builder
	b.WriteString(heading(s.Tag))
	for _, f := range s.Fields {
		b.WriteString(indent + "<p>" + Resolve(f) + "</p>\n")
	}
	return b.String()
}
