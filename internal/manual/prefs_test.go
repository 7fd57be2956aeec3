package manual

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestBuildIndexAndFilter(t *testing.T) {
	d := Build("__NAMES__---&nbsp;wings&nbsp;---__flap_new__CONTEXT__3d__-----" +
		"__NAME__add_fire__CONTEXT__mis scn__-----")
	if len(d.Index) != 3 {
		t.Fatalf("expected 3 entries, got %+v", d.Index)
	}
	if d.Index[1].Anchor != "flap_new" || !d.Index[0].Caption || d.Index[1].Caption {
		t.Fatalf("unexpected entries %+v", d.Index)
	}

	p := DefaultPreferences()
	if got := Filter(d.Index, p); len(got) != 3 {
		t.Fatalf("default prefs should show everything, got %d", len(got))
	}
	p = p.Toggle("mod")
	if got := Filter(d.Index, p); len(got) != 1 || got[0].Name != "add_fire" {
		t.Fatalf("expected only add_fire, got %+v", got)
	}
	p = p.Toggle("mod")
	p.Filter = "FLAP"
	if got := Filter(d.Index, p); len(got) != 1 || got[0].Name != "flap_new" {
		t.Fatalf("filter should be case-insensitive, got %+v", got)
	}
}

func TestToggleKeepsDisplayOrder(t *testing.T) {
	p := Preferences{Types: []string{"scn"}}
	p = p.Toggle("mis")
	if !reflect.DeepEqual(p.Types, []string{"mis", "scn"}) {
		t.Fatalf("got %v", p.Types)
	}
	p = p.Toggle("scn").Toggle("mis")
	if len(p.Types) != 0 {
		t.Fatalf("expected nothing selected, got %v", p.Types)
	}
}

func TestPreferencesMemoryRoundTrip(t *testing.T) {
	s := MemoryStore{}
	if got := LoadPreferences(s); !reflect.DeepEqual(got, DefaultPreferences()) {
		t.Fatalf("empty store should yield defaults, got %+v", got)
	}
	want := Preferences{Types: []string{}, Filter: "wind"}
	if err := want.Save(s); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := LoadPreferences(s); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestLoadPreferencesDropsUnknownClasses(t *testing.T) {
	s := MemoryStore{KeySelectedTypes: "scn bogus scn mod"}
	got := LoadPreferences(s)
	if !reflect.DeepEqual(got.Types, []string{"scn", "mod"}) {
		t.Fatalf("got %v", got.Types)
	}
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	p := DefaultPreferences().Toggle("mis")
	p.Filter = "fire"
	if err := p.Save(fs); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got := LoadPreferences(again)
	if strings.Join(got.Types, " ") != "mod scn" || got.Filter != "fire" {
		t.Fatalf("unexpected reloaded prefs %+v", got)
	}
}
