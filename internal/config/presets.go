package config

import (
	"fmt"
	"sort"
)

// Preset is a named generator configuration. Exactly one of City and Crowd
// is set.
type Preset struct {
	Name        string
	Description string
	City        *CityConfig
	Crowd       *CrowdConfig
}

// BuiltIn returns the predefined city and crowd presets.
func BuiltIn() map[string]Preset {
	city := DefaultCity()

	downtown := DefaultCity()
	downtown.Zones.Center.Density = 0.8
	downtown.Zones.City.Density = 0.5
	downtown.Zones.Outskirts.Density = 0.1
	downtown.Zones.Center.Street = Bounds{30, 50}
	downtown.Zones.Center.Height = Bounds{400, 800}

	village := DefaultCity()
	village.Zones.Center.Density = 0.2
	village.Zones.Center.Height = Bounds{70, 150}
	village.Zones.Center.Rotate = Rotation{Mode: RotateRandom}
	village.Zones.City.Density = 0.05
	village.Zones.City.Height = Bounds{50, 100}
	village.Zones.Outskirts.Density = 0

	crowd := DefaultCrowd()

	rescue := DefaultCrowd()
	rescue.MaxPeople = 12
	rescue.Density = 0.3
	rescue.Flags = FlagOdds{NeedRescue: 0.6, Aware: 0.2, OnStretcher: 0.1, RunTowards: 0.2}

	bystanders := DefaultCrowd()
	bystanders.MaxPeople = 40
	bystanders.Density = 0.7
	bystanders.Flags = FlagOdds{Alert: 0.8, Aware: 0.9}
	bystanders.Rotate = Rotation{Mode: RotateFixed, Heading: 180}

	return map[string]Preset{
		"default": {
			Name:        "Default",
			Description: "Stock city layout: dense center, sparse city ring, scattered outskirts.",
			City:        &city,
		},
		"dense-downtown": {
			Name:        "Dense Downtown",
			Description: "Tall, tightly packed center with busier surrounding zones.",
			City:        &downtown,
		},
		"village": {
			Name:        "Village",
			Description: "Low scattered houses and empty outskirts.",
			City:        &village,
		},
		"crowd": {
			Name:        "Crowd",
			Description: "Stock crowd of up to 90 people, some alert or aware.",
			Crowd:       &crowd,
		},
		"rescue-scene": {
			Name:        "Rescue Scene",
			Description: "A few casualties waiting for help, some on stretchers.",
			Crowd:       &rescue,
		},
		"bystanders": {
			Name:        "Bystanders",
			Description: "Onlookers facing the same way, mostly alert.",
			Crowd:       &bystanders,
		},
	}
}

// PresetNames lists the presets of the requested kind, sorted.
func PresetNames(city bool) []string {
	var names []string
	for n, p := range BuiltIn() {
		if (p.City != nil) == city {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// CityPreset returns the named city preset.
func CityPreset(name string) (CityConfig, error) {
	p, ok := BuiltIn()[name]
	if !ok || p.City == nil {
		return CityConfig{}, fmt.Errorf("unknown city preset %q (have %v)", name, PresetNames(true))
	}
	return *p.City, nil
}

// CrowdPreset returns the named crowd preset.
func CrowdPreset(name string) (CrowdConfig, error) {
	p, ok := BuiltIn()[name]
	if !ok || p.Crowd == nil {
		return CrowdConfig{}, fmt.Errorf("unknown crowd preset %q (have %v)", name, PresetNames(false))
	}
	return *p.Crowd, nil
}
