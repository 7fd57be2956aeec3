package markup

// Section tags recognised in the manual source.
const (
	TagName        = "NAME"
	TagNames       = "NAMES"
	TagSee         = "SEE"
	TagSynopsis    = "SYNOPSIS"
	TagDescription = "DESCRIPTION"
	TagArguments   = "ARGUMENTS"
	TagContext     = "CONTEXT"
	TagExample     = "EXAMPLE"
	TagExamples    = "EXAMPLES"
	EndMarker      = "-----"
)

// CaptionPrefix marks identifiers that are organisational captions rather
// than real parameter names.
const CaptionPrefix = "---"

var sectionTags = map[string]SectionKind{
	TagName:        SectionIdentity,
	TagNames:       SectionIdentity,
	TagSee:         SectionSeeAlso,
	TagSynopsis:    SectionSynopsis,
	TagDescription: SectionDescription,
	TagArguments:   SectionArguments,
	TagContext:     SectionContext,
	TagExample:     SectionExample,
	TagExamples:    SectionExample,
}

// IsTag reports whether s is a section tag or the end-of-record marker.
// Matching is exact: a padded field such as " NAME" is text.
func IsTag(s string) bool {
	if s == EndMarker {
		return true
	}
	_, ok := sectionTags[s]
	return ok
}

// Context is a file-type category a parameter can appear in.
type Context struct {
	Code  string // as written in the source
	Class string // class token used for filtering
	Label string
}

// Contexts lists the recognised context codes in display order.
var Contexts = []Context{
	{Code: "mis", Class: "mis", Label: "mission file (*.mis)"},
	{Code: "3d", Class: "mod", Label: "model file (*.3d)"},
	{Code: "scn", Class: "scn", Label: "scenery file (*.scn)"},
}

// AllClasses returns the class tokens of every recognised context.
func AllClasses() []string {
	out := make([]string, len(Contexts))
	for i, c := range Contexts {
		out[i] = c.Class
	}
	return out
}

// LookupContext maps a source code such as "3d" to its Context.
func LookupContext(code string) (Context, bool) {
	for _, c := range Contexts {
		if c.Code == code {
			return c, true
		}
	}
	return Context{}, false
}

// ContextForClass maps a class token such as "mod" back to its Context.
func ContextForClass(class string) (Context, bool) {
	for _, c := range Contexts {
		if c.Class == class {
			return c, true
		}
	}
	return Context{}, false
}
