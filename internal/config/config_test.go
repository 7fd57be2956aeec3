package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sar2tools/internal/scenery"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultCity().Validate(); err != nil {
		t.Fatalf("default city invalid: %v", err)
	}
	if err := DefaultCrowd().Validate(); err != nil {
		t.Fatalf("default crowd invalid: %v", err)
	}
}

func TestBuiltInPresetsAreValid(t *testing.T) {
	presets := BuiltIn()
	for _, n := range []string{"default", "dense-downtown", "village", "crowd", "rescue-scene", "bystanders"} {
		p, ok := presets[n]
		if !ok {
			t.Fatalf("preset %s not found", n)
		}
		if p.Description == "" {
			t.Fatalf("preset %s missing description", n)
		}
		if (p.City == nil) == (p.Crowd == nil) {
			t.Fatalf("preset %s must set exactly one config", n)
		}
		var err error
		if p.City != nil {
			err = p.City.Validate()
		} else {
			err = p.Crowd.Validate()
		}
		if err != nil {
			t.Fatalf("preset %s invalid: %v", n, err)
		}
	}
	if _, err := CityPreset("bystanders"); err == nil {
		t.Fatalf("crowd preset accepted as city")
	}
	if _, err := CrowdPreset("rescue-scene"); err != nil {
		t.Fatalf("crowd preset: %v", err)
	}
}

func TestZonesGet(t *testing.T) {
	c := DefaultCity()
	if c.Zones.Get(scenery.Center).Density != 0.35 || c.Zones.Get(scenery.Outskirts).Density != 0.02 {
		t.Fatalf("zone lookup mismatch")
	}
}

func TestLoadCityOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
ground: 5
zones:
  center:
    density: 1
    street: {min: 10, max: 10}
`)
	cfg, err := LoadCity(path, DefaultCity())
	if err != nil {
		t.Fatalf("LoadCity: %v", err)
	}
	if cfg.Ground != 5 || cfg.Zones.Center.Density != 1 || cfg.Zones.Center.Street != (Bounds{10, 10}) {
		t.Fatalf("overrides not applied: %+v", cfg.Zones.Center)
	}
	if cfg.Zones.Center.Height != (Bounds{250, 515}) || len(cfg.DayTextures) != 5 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadCityRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "zones:\n  center:\n    densty: 0.5\n",
		"density range": "zones:\n  city:\n    density: 1.5\n",
		"bad mode":      "zones:\n  city:\n    rotate: {mode: sometimes}\n",
	}
	for name, body := range cases {
		if _, err := LoadCity(writeFile(t, body), DefaultCity()); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadCrowd(t *testing.T) {
	path := writeFile(t, "max_people: 0\nflags:\n  need_rescue: 0.5\n")
	cfg, err := LoadCrowd(path, DefaultCrowd())
	if err != nil {
		t.Fatalf("LoadCrowd: %v", err)
	}
	if cfg.MaxPeople != 0 || cfg.Flags.NeedRescue != 0.5 || cfg.Space != 2.2 {
		t.Fatalf("unexpected crowd config %+v", cfg)
	}
	if _, err := LoadCrowd(filepath.Join(t.TempDir(), "nope.yaml"), DefaultCrowd()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	c := DefaultCrowd()
	c.Space = 0
	c.Density = -1
	c.Rotate = Rotation{Mode: RotateFixed, Heading: 400}
	err := c.Validate()
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	for _, want := range []string{"space", "density", "heading"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("missing %q in %v", want, err)
		}
	}

	city := DefaultCity()
	city.Zones.City.Width = Bounds{60, 30}
	city.Zones.Outskirts.Street = Bounds{0, 0}
	err = city.Validate()
	if err == nil || !strings.Contains(err.Error(), "city.width") || !strings.Contains(err.Error(), "outskirts.street") {
		t.Fatalf("unexpected city validation result: %v", err)
	}
}
