package manual

import (
	"fmt"
	"io"
	"os"

	"sar2tools/internal/markup"
	"sar2tools/internal/parmsbook"
)

// Document is a parsed manual together with its navigation index.
type Document struct {
	Records []markup.Record
	Index   []NavEntry
}

// Stats summarises a document for authors.
type Stats struct {
	Records      int `json:"records"`
	Sections     int `json:"sections"`
	Errors       int `json:"errors"`
	Entries      int `json:"entries"`
	Unterminated int `json:"unterminated"`
	MissingNames int `json:"missing_names"`
}

// Build parses a flat delimited source string.
func Build(src string) *Document {
	recs := markup.Parse(src)
	return &Document{Records: recs, Index: BuildIndex(recs)}
}

// Embedded builds the document shipped with the binary.
func Embedded() (*Document, error) {
	src, err := parmsbook.Source()
	if err != nil {
		return nil, err
	}
	return Build(src), nil
}

// Open builds a document from a file. Files in the authoring format (line
// continuations) are decoded first unless raw is set.
func Open(path string, raw bool) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()
	if raw {
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}
		return Build(string(b)), nil
	}
	src, err := markup.DecodeSource(f)
	if err != nil {
		return nil, err
	}
	return Build(src), nil
}

// Stats counts records, sections and data errors.
func (d *Document) Stats() Stats {
	st := Stats{Records: len(d.Records), Entries: len(d.Index)}
	for _, r := range d.Records {
		st.Sections += len(r.Sections)
		st.Errors += r.Errors()
		if r.Unterminated {
			st.Unterminated++
		}
		if len(r.Names) == 0 {
			st.MissingNames++
		}
	}
	return st
}

// Lookup returns the record defining anchor, matching any of its identifiers.
func (d *Document) Lookup(anchor string) (markup.Record, bool) {
	for _, r := range d.Records {
		for _, id := range r.Names {
			if id.Name == anchor {
				return r, true
			}
		}
	}
	return markup.Record{}, false
}
