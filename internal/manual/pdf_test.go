package manual

import (
	"bytes"
	"testing"
)

func TestWritePDF(t *testing.T) {
	d := Build(scenarioA + "__NAME__create_fire__DESCRIPTION__See ##add_fire or ##https://example.org.__SEE__x__ODD__-----")
	var buf bytes.Buffer
	if err := d.WritePDF(&buf, PDFOptions{}); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestWritePDFFiltered(t *testing.T) {
	d := Build(scenarioA + "__NAME__flap__CONTEXT__3d__-----")
	p := DefaultPreferences().Toggle("mod")
	if got := d.visibleRecords(p); len(got) != 1 || got[0].Anchor() != "add_fire" {
		t.Fatalf("unexpected records %+v", got)
	}
	var buf bytes.Buffer
	if err := d.WritePDF(&buf, PDFOptions{Title: "Filtered", Prefs: &p}); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty output")
	}
}
