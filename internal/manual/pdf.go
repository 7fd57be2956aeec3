package manual

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"sar2tools/internal/markup"
)

// PDFOptions controls PDF export.
type PDFOptions struct {
	Title string
	// Prefs limits the exported records to those with a visible identifier.
	Prefs *Preferences
}

const lineHeight = 5.0

// WritePDF exports the manual with one bookmark per record and internal
// cross-references turned into document links.
func (d *Document) WritePDF(w io.Writer, opts PDFOptions) error {
	if opts.Title == "" {
		opts.Title = "SaR II parameters"
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator("sar2tools", false)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	records := d.Records
	if opts.Prefs != nil {
		records = d.visibleRecords(*opts.Prefs)
	}
	links := map[string]int{}
	for _, e := range BuildIndex(records) {
		if _, ok := links[e.Anchor]; !ok {
			links[e.Anchor] = pdf.AddLink()
		}
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr(opts.Title), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, r := range records {
		if r.Anchor() != "" {
			pdf.Bookmark(tr(r.Anchor()), 0, -1)
			for _, id := range r.Names {
				if link, ok := links[id.Name]; ok {
					pdf.SetLink(link, pdf.GetY(), -1)
				}
			}
		}
		for _, blk := range Blocks(r) {
			pdf.SetFont("Helvetica", "B", 10)
			if blk.Kind == markup.SectionError {
				pdf.SetTextColor(176, 0, 0)
			}
			pdf.CellFormat(0, 7, tr(blk.Heading), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			for _, line := range blk.Lines {
				pdf.SetX(20)
				writeLine(pdf, tr, blk.Kind, line, links)
				pdf.Ln(lineHeight + 1)
			}
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Ln(2)
		y := pdf.GetY()
		pdf.Line(10, y, 200, y)
		pdf.Ln(4)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func writeLine(pdf *gofpdf.Fpdf, tr func(string) string, kind markup.SectionKind, line string, links map[string]int) {
	switch kind {
	case markup.SectionSynopsis:
		pdf.Write(lineHeight, tr(plainSynopsis(line)))
		return
	case markup.SectionIdentity, markup.SectionContext, markup.SectionError:
		pdf.Write(lineHeight, tr(Plain(line)))
		return
	}
	for i, sp := range markup.SplitRefs(line) {
		if i > 0 {
			pdf.Write(lineHeight, " ")
		}
		if sp.Text != "" {
			pdf.Write(lineHeight, tr(Plain(sp.Text)))
		}
		if !sp.IsRef() {
			continue
		}
		pdf.SetTextColor(0, 0, 192)
		switch link, ok := links[sp.Target]; {
		case sp.External:
			pdf.WriteLinkString(lineHeight, tr(sp.Target), sp.Target)
		case ok:
			pdf.WriteLinkID(lineHeight, tr(sp.Target), link)
		default:
			pdf.SetTextColor(0, 0, 0)
			pdf.Write(lineHeight, tr(sp.Target))
		}
		pdf.SetTextColor(0, 0, 0)
	}
}

func (d *Document) visibleRecords(p Preferences) []markup.Record {
	var out []markup.Record
	for _, r := range d.Records {
		for _, e := range BuildIndex([]markup.Record{r}) {
			if p.Visible(e) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
