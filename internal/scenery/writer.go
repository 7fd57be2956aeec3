package scenery

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Writer receives generated scenery in emission order.
type Writer interface {
	WriteComment(Comment) error
	WriteStructure(Structure) error
	WritePerson(Person) error
}

// StructureHeader is the column legend printed above every building.
const StructureHeader = "#                 type     range length width height  walls_texture  walls_night_texture  roof_texture"

// TextWriter prints records in scenery file syntax.
type TextWriter struct {
	out io.Writer
}

// NewTextWriter writes to out, or STDOUT when out is nil.
func NewTextWriter(out io.Writer) *TextWriter {
	if out == nil {
		out = os.Stdout
	}
	return &TextWriter{out: out}
}

// WriteComment prints the comment line.
func (w *TextWriter) WriteComment(c Comment) error {
	text := c.Text + "\n"
	if c.Spaced {
		text += "\n"
	}
	_, err := io.WriteString(w.out, text)
	return err
}

// WriteStructure prints a create_premodeled block.
func (w *TextWriter) WriteStructure(s Structure) error {
	var b strings.Builder
	b.WriteString(StructureHeader + "\n")
	fmt.Fprintf(&b, "create_premodeled building %d %d %d %d %s %s %s\n",
		s.Range, s.Length, s.Width, s.Height, s.DayTexture, s.NightTexture, s.RoofTexture)
	fmt.Fprintf(&b, "translation %d %d %d\n", s.X, s.Y, s.Z)
	if s.Heading != nil {
		fmt.Fprintf(&b, "rotate %d 0 0\n", *s.Heading)
	}
	b.WriteString("\n\n")
	_, err := io.WriteString(w.out, b.String())
	return err
}

// WritePerson prints a create_human block.
func (w *TextWriter) WritePerson(p Person) error {
	var b strings.Builder
	b.WriteString(CreateHumanLine(p.Flags) + "\n")
	b.WriteString("translation " + FormatCoord(p.X) + " " + FormatCoord(p.Y) + " " + strconv.Itoa(p.Z) + "\n")
	if p.Flags.NeedRescue {
		b.WriteString("set_human_mesg_enter " + p.Message + "\n")
	}
	if p.Flags.RunTowards {
		b.WriteString("human_reference player run_towards\n")
	}
	if p.Heading != nil {
		fmt.Fprintf(&b, "rotate %d 0 0\n", *p.Heading)
	}
	b.WriteString("\n\n")
	_, err := io.WriteString(w.out, b.String())
	return err
}

// CreateHumanLine builds the create_human line. Every flag word carries a
// trailing space except on_streatcher, which always comes last.
func CreateHumanLine(f PersonFlags) string {
	s := "create_human "
	if f.OnStretcher {
		s += "victim_streatcher_assisted "
	} else {
		s += "default "
	}
	if f.NeedRescue {
		s += "need_rescue "
	}
	if f.Alert {
		s += "alert "
	}
	if f.Lying || f.OnStretcher {
		s += "lying "
	}
	if f.Aware {
		s += "aware "
	}
	if f.OnStretcher {
		s += "on_streatcher"
	}
	return s
}
