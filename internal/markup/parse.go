// Record grouping for the manual source
package markup

import "strings"

// SectionKind identifies how a section is rendered.
type SectionKind int

const (
	SectionIdentity SectionKind = iota
	SectionSeeAlso
	SectionSynopsis
	SectionDescription
	SectionContext
	SectionArguments
	SectionExample
	SectionError
)

func (k SectionKind) String() string {
	switch k {
	case SectionIdentity:
		return "identity"
	case SectionSeeAlso:
		return "see"
	case SectionSynopsis:
		return "synopsis"
	case SectionDescription:
		return "description"
	case SectionContext:
		return "context"
	case SectionArguments:
		return "arguments"
	case SectionExample:
		return "example"
	default:
		return "error"
	}
}

// Section is a tagged group of fields. Tag keeps the spelling used in the
// source (EXAMPLE vs EXAMPLES); for SectionError it holds the offending field.
type Section struct {
	Kind   SectionKind
	Tag    string
	Fields []string
}

// Identifier is one name listed in a record's identity section.
type Identifier struct {
	Name    string
	Caption bool
}

// Record is every section between an identity tag and the end marker.
type Record struct {
	Names        []Identifier
	Sections     []Section
	Start        int  // field index of the opening tag
	Unterminated bool // closed by end of input or by a new identity tag
}

// Anchor is the document anchor of the record: its first identifier.
func (r Record) Anchor() string {
	if len(r.Names) == 0 {
		return ""
	}
	return r.Names[0].Name
}

// Classes returns the context classes of the record in encounter order,
// without duplicates.
func (r Record) Classes() []string {
	var out []string
	seen := map[string]bool{}
	for _, s := range r.Sections {
		if s.Kind != SectionContext {
			continue
		}
		for _, code := range strings.Fields(strings.Join(s.Fields, " ")) {
			c, ok := LookupContext(code)
			if !ok || seen[c.Class] {
				continue
			}
			seen[c.Class] = true
			out = append(out, c.Class)
		}
	}
	return out
}

// Errors counts the unrecognised tags inside the record.
func (r Record) Errors() int {
	n := 0
	for _, s := range r.Sections {
		if s.Kind == SectionError {
			n++
		}
	}
	return n
}

// sectionHandler consumes the body of one section; c is positioned right
// after the tag.
type sectionHandler func(tag string, c Cursor) (Section, Cursor)

var handlers = map[SectionKind]sectionHandler{
	SectionIdentity:    multiField(SectionIdentity),
	SectionSeeAlso:     singleField(SectionSeeAlso),
	SectionSynopsis:    multiField(SectionSynopsis),
	SectionDescription: multiField(SectionDescription),
	SectionContext:     multiField(SectionContext),
	SectionArguments:   multiField(SectionArguments),
	SectionExample:     multiField(SectionExample),
}

func multiField(kind SectionKind) sectionHandler {
	return func(tag string, c Cursor) (Section, Cursor) {
		fields, next := takeUntilTag(c)
		return Section{Kind: kind, Tag: tag, Fields: fields}, next
	}
}

func singleField(kind SectionKind) sectionHandler {
	return func(tag string, c Cursor) (Section, Cursor) {
		s := Section{Kind: kind, Tag: tag}
		if c.IsSectionEnd() {
			return s, c
		}
		f, _ := c.Peek()
		s.Fields = []string{f.Text}
		return s, c.Advance()
	}
}

// Parse groups the delimited source into records. Malformed input never
// fails: an unrecognised tag becomes a SectionError in the open record and
// parsing continues with the next field.
func Parse(src string) []Record {
	fields := Tokenize(src)
	if len(fields) > 0 {
		fields = fields[1:]
	}
	var (
		records []Record
		rec     Record
		open    bool
	)
	flush := func(unterminated bool) {
		if !open {
			return
		}
		rec.Unterminated = unterminated
		records = append(records, rec)
		rec = Record{}
		open = false
	}

	c := NewCursor(fields)
	for !c.Done() {
		f, _ := c.Peek()
		tag := f.Text
		c = c.Advance()

		if tag == EndMarker {
			flush(false)
			continue
		}
		kind, known := sectionTags[tag]
		if !known {
			if !open && strings.TrimSpace(tag) == "" {
				// whitespace between records
				continue
			}
			if !open {
				rec = Record{Start: f.Index}
				open = true
			}
			rec.Sections = append(rec.Sections, Section{Kind: SectionError, Tag: f.Text})
			continue
		}
		if kind == SectionIdentity && open {
			flush(true)
		}
		if !open {
			rec = Record{Start: f.Index}
			open = true
		}
		var sec Section
		sec, c = handlers[kind](tag, c)
		if kind == SectionIdentity {
			for _, name := range sec.Fields {
				rec.Names = append(rec.Names, Identifier{
					Name:    name,
					Caption: strings.HasPrefix(name, CaptionPrefix),
				})
			}
		}
		rec.Sections = append(rec.Sections, sec)
	}
	flush(true)
	return records
}
