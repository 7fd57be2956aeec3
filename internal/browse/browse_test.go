package browse

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"sar2tools/internal/manual"
)

const source = "__NAME__add_fire__DESCRIPTION__Adds a fire.__CONTEXT__mis scn__-----" +
	"__NAME__flap_new__DESCRIPTION__A wing flap.__CONTEXT__3d__-----" +
	"__NAME__wind__DESCRIPTION__Sets the wind.__CONTEXT__scn__-----"

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	mi, _ := m.Update(msg)
	return mi.(Model)
}

func TestToggleContextSavesPreferences(t *testing.T) {
	store := manual.MemoryStore{}
	m := New(manual.Build(source), store)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if len(m.Visible()) != 3 {
		t.Fatalf("expected all entries visible, got %d", len(m.Visible()))
	}
	m = update(t, m, key("2")) // model files off
	if len(m.Visible()) != 2 {
		t.Fatalf("expected 2 entries after toggling mod, got %+v", m.Visible())
	}
	if store[manual.KeySelectedTypes] != "mis scn" {
		t.Fatalf("preferences not saved: %+v", store)
	}
	again := New(manual.Build(source), store)
	if len(again.Visible()) != 2 {
		t.Fatalf("preferences not restored on start")
	}
}

func TestFilterInput(t *testing.T) {
	store := manual.MemoryStore{}
	m := New(manual.Build(source), store)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = update(t, m, key("/"))
	for _, r := range "FIRE" {
		m = update(t, m, key(string(r)))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.filtering {
		t.Fatalf("enter should leave filter mode")
	}
	if got := m.Visible(); len(got) != 1 || got[0].Name != "add_fire" {
		t.Fatalf("unexpected filtered entries %+v", got)
	}
	if store[manual.KeyFilter] != "FIRE" {
		t.Fatalf("filter not saved: %+v", store)
	}
}

func TestSelectionShowsRecord(t *testing.T) {
	m := New(manual.Build(source), nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if !strings.Contains(m.vp.View(), "Adds a fire.") {
		t.Fatalf("first record not shown:\n%s", m.vp.View())
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if e, ok := m.Selected(); !ok || e.Name != "flap_new" {
		t.Fatalf("unexpected selection %+v", e)
	}
	if !strings.Contains(m.vp.View(), "A wing flap.") {
		t.Fatalf("selection not shown:\n%s", m.vp.View())
	}
	if !strings.Contains(m.View(), "3/3") {
		t.Fatalf("header missing counts:\n%s", m.View())
	}
}

func TestQuit(t *testing.T) {
	m := New(manual.Build(source), nil)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

func TestWriteList(t *testing.T) {
	var buf bytes.Buffer
	p := manual.DefaultPreferences().Toggle("scn")
	if err := WriteList(&buf, manual.Build(source), p); err != nil {
		t.Fatalf("write list: %v", err)
	}
	want := "add_fire\tmis,scn\nflap_new\tmod\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}
