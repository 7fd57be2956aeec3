package scenery

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func intp(v int) *int { return &v }

func TestTextWriterStructure(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)
	s := Structure{Range: 4000, Length: 40, Width: 30, Height: 250, DayTexture: "building01_tex",
		NightTexture: "building01_night_tex", RoofTexture: "wall01_tex", X: 20, Y: 15, Heading: intp(90)}
	if err := w.WriteStructure(s); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := StructureHeader + "\n" +
		"create_premodeled building 4000 40 30 250 building01_tex building01_night_tex wall01_tex\n" +
		"translation 20 15 0\n" +
		"rotate 90 0 0\n\n\n"
	if buf.String() != want {
		t.Fatalf("got\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestTextWriterPerson(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)
	p := Person{Flags: PersonFlags{NeedRescue: true, Aware: true, RunTowards: true},
		X: 27355.25, Y: -35100, Message: "Please help!", Heading: intp(0)}
	if err := w.WritePerson(p); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "create_human default need_rescue aware \n" +
		"translation 27355.25 -35100.0 0\n" +
		"set_human_mesg_enter Please help!\n" +
		"human_reference player run_towards\n" +
		"rotate 0 0 0\n\n\n"
	if buf.String() != want {
		t.Fatalf("got\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestCreateHumanLine(t *testing.T) {
	cases := []struct {
		flags PersonFlags
		want  string
	}{
		{PersonFlags{}, "create_human default "},
		{PersonFlags{Alert: true}, "create_human default alert "},
		{PersonFlags{OnStretcher: true}, "create_human victim_streatcher_assisted lying on_streatcher"},
		{PersonFlags{Lying: true, Aware: true}, "create_human default lying aware "},
	}
	for _, tc := range cases {
		if got := CreateHumanLine(tc.flags); got != tc.want {
			t.Errorf("CreateHumanLine(%+v) = %q, want %q", tc.flags, got, tc.want)
		}
	}
}

func TestZoneText(t *testing.T) {
	for _, z := range Zones {
		b, _ := z.MarshalText()
		var back Zone
		if err := back.UnmarshalText(b); err != nil || back != z {
			t.Fatalf("zone %v did not survive text encoding", z)
		}
	}
	if _, err := ParseZone("suburbs"); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
}

type collectWriter struct{ lines []string }

func (c *collectWriter) WriteComment(cm Comment) error {
	c.lines = append(c.lines, "comment:"+cm.Text)
	return nil
}

func (c *collectWriter) WriteStructure(s Structure) error {
	c.lines = append(c.lines, "structure:"+s.ID)
	return nil
}

func (c *collectWriter) WritePerson(p Person) error {
	c.lines = append(c.lines, "person:"+p.ID)
	return nil
}

func TestMultiWriterAndReplay(t *testing.T) {
	var log bytes.Buffer
	direct := &collectWriter{}
	mw := NewMultiWriter(NewJSONWriter(&log), nil, direct)
	_ = mw.WriteComment(Comment{Text: "#CITY", Spaced: true})
	_ = mw.WriteStructure(Structure{ID: "s1", Zone: City})
	_ = mw.WritePerson(Person{ID: "p1"})

	replayed := &collectWriter{}
	if err := Replay(&log, replayed); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if strings.Join(replayed.lines, ",") != strings.Join(direct.lines, ",") {
		t.Fatalf("replay %v, direct %v", replayed.lines, direct.lines)
	}
}

func TestReplayReproducesText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.jsonl")
	fw, err := NewFileWriter(path)
	if err != nil {
		t.Fatalf("file writer: %v", err)
	}
	var direct bytes.Buffer
	w := NewMultiWriter(NewTextWriter(&direct), fw)
	_ = w.WriteComment(Comment{Text: "##### CROWD #####"})
	_ = w.WritePerson(Person{Number: 0, X: 1.5, Y: 2, Flags: PersonFlags{Alert: true}, Heading: intp(12)})
	_ = w.WriteStructure(Structure{Range: 1, Length: 2, Width: 3, Height: 4, DayTexture: "d", NightTexture: "n", RoofTexture: "r"})
	if err := fw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	var replayed bytes.Buffer
	if err := ReplayFile(path, NewTextWriter(&replayed)); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if replayed.String() != direct.String() {
		t.Fatalf("replayed text differs:\n%s\nvs\n%s", replayed.String(), direct.String())
	}
}

func TestReplayRejectsUnknownKind(t *testing.T) {
	err := Replay(strings.NewReader(`{"kind":"tree"}`+"\n"), &collectWriter{})
	if !errors.Is(err, ErrBadEnvelope) {
		t.Fatalf("expected ErrBadEnvelope, got %v", err)
	}
	if err := ReplayFile(filepath.Join(t.TempDir(), "missing"), &collectWriter{}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
