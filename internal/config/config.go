// Generator configuration with YAML loading and CUE validation
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sar2tools/internal/scenery"
)

// Bounds is a half-open integer range [Min, Max).
type Bounds struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Rect is an axis-aligned area in world units. Containment is inclusive.
type Rect struct {
	Left   int `yaml:"left"`
	Bottom int `yaml:"bottom"`
	Right  int `yaml:"right"`
	Top    int `yaml:"top"`
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Bottom && y <= r.Top
}

// RotateMode selects how headings are assigned.
type RotateMode string

const (
	RotateNone   RotateMode = "none"
	RotateFixed  RotateMode = "fixed"
	RotateRandom RotateMode = "random"
)

// Rotation is a heading policy. Heading is used by RotateFixed only.
type Rotation struct {
	Mode    RotateMode `yaml:"mode"`
	Heading int        `yaml:"heading,omitempty"`
}

// ZoneConfig holds the placement parameters of one city zone.
type ZoneConfig struct {
	Bounds  Rect     `yaml:"bounds"`
	Density float64  `yaml:"density"`
	Range   Bounds   `yaml:"range"`
	Street  Bounds   `yaml:"street"`
	Height  Bounds   `yaml:"height"`
	Width   Bounds   `yaml:"width"`
	Length  Bounds   `yaml:"length"`
	Rotate  Rotation `yaml:"rotate"`
}

// Zones carries one ZoneConfig per scenery.Zone.
type Zones struct {
	Center    ZoneConfig `yaml:"center"`
	City      ZoneConfig `yaml:"city"`
	Outskirts ZoneConfig `yaml:"outskirts"`
}

// Get returns the configuration of z.
func (zs Zones) Get(z scenery.Zone) ZoneConfig {
	switch z {
	case scenery.Center:
		return zs.Center
	case scenery.City:
		return zs.City
	default:
		return zs.Outskirts
	}
}

// CityConfig drives the building generator.
type CityConfig struct {
	Ground        int      `yaml:"ground"`
	DayTextures   []string `yaml:"day_textures"`
	NightTextures []string `yaml:"night_textures"`
	RoofTexture   string   `yaml:"roof_texture"`
	Zones         Zones    `yaml:"zones"`
}

// Area is a floating point placement area.
type Area struct {
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
}

// FlagOdds are per-person probabilities of each behaviour flag.
type FlagOdds struct {
	NeedRescue  float64 `yaml:"need_rescue"`
	Alert       float64 `yaml:"alert"`
	Aware       float64 `yaml:"aware"`
	OnStretcher float64 `yaml:"on_stretcher"`
	RunTowards  float64 `yaml:"run_towards"`
}

// CrowdConfig drives the crowd generator.
type CrowdConfig struct {
	Ground        int      `yaml:"ground"`
	Area          Area     `yaml:"area"`
	MaxPeople     int      `yaml:"max_people"`
	Density       float64  `yaml:"density"`
	Space         float64  `yaml:"space"`
	MaxDeviation  float64  `yaml:"max_deviation"`
	Flags         FlagOdds `yaml:"flags"`
	Rotate        Rotation `yaml:"rotate"`
	EnterMessages []string `yaml:"enter_messages"`
}

// DefaultCity returns the stock city layout.
func DefaultCity() CityConfig {
	return CityConfig{
		DayTextures:   []string{"building01_tex", "building02_tex", "building03_tex", "building04_tex", "building05_tex"},
		NightTextures: []string{"building01_night_tex"},
		RoofTexture:   "wall01_tex",
		Zones: Zones{
			Center: ZoneConfig{
				Bounds:  Rect{Left: 27160, Bottom: -36273, Right: 27882, Top: -33900},
				Density: 0.35,
				Range:   Bounds{4000, 15000},
				Street:  Bounds{60, 80},
				Height:  Bounds{250, 515},
				Width:   Bounds{30, 90},
				Length:  Bounds{30, 90},
				Rotate:  Rotation{Mode: RotateNone},
			},
			City: ZoneConfig{
				Bounds:  Rect{Left: 26583, Bottom: -37545, Right: 28427, Top: -33320},
				Density: 0.15,
				Range:   Bounds{3000, 9000},
				Street:  Bounds{50, 100},
				Height:  Bounds{100, 400},
				Width:   Bounds{30, 60},
				Length:  Bounds{30, 60},
				Rotate:  Rotation{Mode: RotateRandom},
			},
			Outskirts: ZoneConfig{
				Bounds:  Rect{Left: 24800, Bottom: -42100, Right: 30450, Top: -31457},
				Density: 0.02,
				Range:   Bounds{3000, 5000},
				Street:  Bounds{50, 100},
				Height:  Bounds{70, 150},
				Width:   Bounds{20, 50},
				Length:  Bounds{20, 50},
				Rotate:  Rotation{Mode: RotateRandom},
			},
		},
	}
}

// DefaultCrowd returns the stock crowd.
func DefaultCrowd() CrowdConfig {
	return CrowdConfig{
		Area:          Area{Left: 27355, Bottom: -35100, Right: 27394, Top: -35077},
		MaxPeople:     90,
		Density:       0.5,
		Space:         2.2,
		MaxDeviation:  0.7,
		Flags:         FlagOdds{Alert: 0.4, Aware: 0.4},
		Rotate:        Rotation{Mode: RotateRandom},
		EnterMessages: []string{"It hurts!", "Please help!", "...(unconscious)"},
	}
}

// LoadCity reads a YAML city file. Keys missing from the file keep the
// values of base.
func LoadCity(path string, base CityConfig) (CityConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return CityConfig{}, fmt.Errorf("read city config: %w", err)
	}
	if err := ValidateWithCue(b, CitySchema); err != nil {
		return CityConfig{}, err
	}
	cfg := base
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return CityConfig{}, fmt.Errorf("parse city config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return CityConfig{}, err
	}
	return cfg, nil
}

// LoadCrowd reads a YAML crowd file on top of base.
func LoadCrowd(path string, base CrowdConfig) (CrowdConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return CrowdConfig{}, fmt.Errorf("read crowd config: %w", err)
	}
	if err := ValidateWithCue(b, CrowdSchema); err != nil {
		return CrowdConfig{}, err
	}
	cfg := base
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return CrowdConfig{}, fmt.Errorf("parse crowd config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return CrowdConfig{}, err
	}
	return cfg, nil
}
