package manual

import "sar2tools/internal/markup"

// NavEntry is one navigation link: an identifier and the context classes of
// the record that defines it.
type NavEntry struct {
	Name    string   `json:"name"`
	Anchor  string   `json:"anchor"`
	Classes []string `json:"classes"`
	Caption bool     `json:"caption,omitempty"`
}

// BuildIndex returns one entry per identifier of every record, in document
// order.
func BuildIndex(records []markup.Record) []NavEntry {
	var out []NavEntry
	for _, r := range records {
		classes := r.Classes()
		for i, id := range r.Names {
			anchor := id.Name
			if i == 0 {
				anchor = r.Anchor()
			}
			out = append(out, NavEntry{Name: id.Name, Anchor: anchor, Classes: classes, Caption: id.Caption})
		}
	}
	return out
}

// Filter keeps the entries visible under p.
func Filter(entries []NavEntry, p Preferences) []NavEntry {
	var out []NavEntry
	for _, e := range entries {
		if p.Visible(e) {
			out = append(out, e)
		}
	}
	return out
}
