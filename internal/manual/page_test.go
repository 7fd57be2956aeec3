package manual

import (
	"strings"
	"testing"
)

func TestWriteHTMLNavigation(t *testing.T) {
	d := Build(scenarioA + "__NAME__flap__CONTEXT__3d__-----")
	p := DefaultPreferences().Toggle("mod")
	var b strings.Builder
	if err := d.WriteHTML(&b, PageOptions{Title: "Params", Prefs: p, PrefsAction: "/prefs"}); err != nil {
		t.Fatalf("write html: %v", err)
	}
	page := b.String()
	for _, want := range []string{
		"<title>Params</title>",
		"<a id='left_menu_add_fire' class='mis scn leftMenuLink tooltip' href='#add_fire'>",
		"<a id='left_menu_flap' class='mod leftMenuLink tooltip hidden' href='#flap'>",
		"id='3dFile' name='types' value='mod' data-class='mod'>",
		"id='misFile' name='types' value='mis' data-class='mis' checked>",
		"action='/prefs'",
		"id='FilterInput'",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("missing %q", want)
		}
	}
}

func TestWriteHTMLSyncsPreferencesWhenServed(t *testing.T) {
	d := Build(scenarioA)
	var served strings.Builder
	if err := d.WriteHTML(&served, PageOptions{Prefs: DefaultPreferences(), PrefsAction: "/prefs"}); err != nil {
		t.Fatalf("write html: %v", err)
	}
	page := served.String()
	for _, want := range []string{
		"action='/prefs' data-sync='on'",
		"fetch(form.action",
		"'X-Prefs-Sync': '1'",
		"addEventListener('click', changed)",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("served page missing %q", want)
		}
	}

	var static strings.Builder
	if err := d.WriteHTML(&static, PageOptions{Prefs: DefaultPreferences()}); err != nil {
		t.Fatalf("write html: %v", err)
	}
	if strings.Contains(static.String(), "data-sync") {
		t.Fatal("static page should not post preferences")
	}
	if !strings.Contains(static.String(), "action='#'") {
		t.Fatal("static page should keep the inert form action")
	}
}
