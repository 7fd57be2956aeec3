package markup

import "testing"

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"__NAME__add_fire__SEE__##create_fire parameter.__CONTEXT__mis scn__-----",
		"__NAME__a__-----__NAME__b__-----",
		"____",
		"__",
		"no delimiter at all",
		"",
	}
	for _, in := range inputs {
		fields := Tokenize(in)
		if got := Join(fields); got != in {
			t.Errorf("Join(Tokenize(%q)) = %q", in, got)
		}
	}
}

func TestTokenizeDiscardedLeadingField(t *testing.T) {
	in := "__NAME__wind__SYNOPSIS__wind heading speed [ gusts ]__-----"
	fields := Tokenize(in)
	if fields[0].Text != "" {
		t.Fatalf("expected empty leading field, got %q", fields[0].Text)
	}
	if got := Delimiter + Join(fields[1:]); got != in {
		t.Fatalf("round trip without leading field: %q", got)
	}
	for i, f := range fields {
		if f.Index != i {
			t.Fatalf("field %d has index %d", i, f.Index)
		}
	}
	if fields[2].Text != "wind" {
		t.Fatalf("unexpected field 2: %q", fields[2].Text)
	}
}

func TestCursor(t *testing.T) {
	c := NewCursor(Tokenize("__NAME__x__SEE__y")[1:])
	if !c.AtTag() {
		t.Fatalf("expected tag at start")
	}
	c = c.Advance()
	f, ok := c.Peek()
	if !ok || f.Text != "x" || c.IsSectionEnd() {
		t.Fatalf("unexpected peek %q %v", f.Text, ok)
	}
	before := c
	c = c.Advance()
	if !c.IsSectionEnd() {
		t.Fatalf("expected section end at SEE")
	}
	if before.Pos() != 1 {
		t.Fatalf("advance mutated receiver")
	}
	c = c.Advance().Advance()
	if !c.Done() || !c.IsSectionEnd() {
		t.Fatalf("expected cursor exhausted")
	}
	if c.Advance().Pos() != c.Pos() {
		t.Fatalf("advance past end moved cursor")
	}
}
