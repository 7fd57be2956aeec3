package manual

import (
	"embed"
	"io"
	"text/template"

	"sar2tools/internal/markup"
)

//go:embed templates/page.html.tmpl
var templates embed.FS

var pageTpl = template.Must(template.New("page.html.tmpl").ParseFS(templates, "templates/page.html.tmpl"))

// PageOptions controls the generated HTML page.
type PageOptions struct {
	Title string
	// Prefs sets the initial checkbox and filter state; entries they hide
	// are rendered with the "hidden" class.
	Prefs Preferences
	// PrefsAction is the form target used when the page is served. When set,
	// every checkbox or filter change is posted there as well as kept in
	// sessionStorage.
	PrefsAction string
}

type navItem struct {
	Entry  NavEntry
	Hidden bool
}

type checkbox struct {
	ID      string
	Class   string
	Label   string
	Checked bool
}

var checkboxIDs = map[string]string{"mis": "misFile", "mod": "3dFile", "scn": "scnFile"}

// WriteHTML renders the full manual page.
func (d *Document) WriteHTML(w io.Writer, opts PageOptions) error {
	if opts.Title == "" {
		opts.Title = "SaR II parameters"
	}
	sync := opts.PrefsAction != "" && opts.PrefsAction != "#"
	if !sync {
		opts.PrefsAction = "#"
	}
	nav := make([]navItem, len(d.Index))
	for i, e := range d.Index {
		nav[i] = navItem{Entry: e, Hidden: !opts.Prefs.Visible(e)}
	}
	boxes := make([]checkbox, len(markup.Contexts))
	for i, c := range markup.Contexts {
		boxes[i] = checkbox{ID: checkboxIDs[c.Class], Class: c.Class, Label: "*." + c.Code + " file", Checked: opts.Prefs.Selected(c.Class)}
	}
	sections := make([]string, len(d.Records))
	for i, r := range d.Records {
		sections[i] = RenderRecord(r)
	}
	return pageTpl.Execute(w, struct {
		Title       string
		PrefsAction string
		Sync        bool
		Filter      string
		Checkboxes  []checkbox
		Nav         []navItem
		Sections    []string
	}{
		Title:       opts.Title,
		PrefsAction: opts.PrefsAction,
		Sync:        sync,
		Filter:      opts.Prefs.Filter,
		Checkboxes:  boxes,
		Nav:         nav,
		Sections:    sections,
	})
}
