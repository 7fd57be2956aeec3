// Scenery records emitted by the placement generators
package scenery

import (
	"fmt"
	"strconv"
	"strings"
)

// Zone is a concentric area of the generated city.
type Zone int

const (
	Center Zone = iota
	City
	Outskirts
)

// Zones lists every zone in lookup order, innermost first.
var Zones = []Zone{Center, City, Outskirts}

// SweepOrder is the order in which the city generator fills the zones.
var SweepOrder = []Zone{Outskirts, City, Center}

func (z Zone) String() string {
	switch z {
	case Center:
		return "center"
	case City:
		return "city"
	case Outskirts:
		return "outskirts"
	}
	return "zone(" + strconv.Itoa(int(z)) + ")"
}

// ParseZone is the inverse of Zone.String.
func ParseZone(s string) (Zone, error) {
	for _, z := range Zones {
		if strings.EqualFold(s, z.String()) {
			return z, nil
		}
	}
	return 0, fmt.Errorf("unknown zone %q", s)
}

// MarshalText encodes the zone by name for JSON and YAML.
func (z Zone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText decodes a zone name.
func (z *Zone) UnmarshalText(b []byte) error {
	v, err := ParseZone(string(b))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// Comment is a full comment line; Spaced adds an empty line after it.
type Comment struct {
	Text   string `json:"text"`
	Spaced bool   `json:"spaced,omitempty"`
}

// Structure is one premodeled building.
type Structure struct {
	ID           string `json:"id"`
	Zone         Zone   `json:"zone"`
	Range        int    `json:"range"`
	Length       int    `json:"length"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	DayTexture   string `json:"day_texture"`
	NightTexture string `json:"night_texture"`
	RoofTexture  string `json:"roof_texture"`
	X            int    `json:"x"`
	Y            int    `json:"y"`
	Z            int    `json:"z"`
	Heading      *int   `json:"heading,omitempty"`
}

// PersonFlags are the behaviour switches of a placed human.
type PersonFlags struct {
	NeedRescue  bool `json:"need_rescue,omitempty"`
	Alert       bool `json:"alert,omitempty"`
	Lying       bool `json:"lying,omitempty"`
	Aware       bool `json:"aware,omitempty"`
	OnStretcher bool `json:"on_stretcher,omitempty"`
	RunTowards  bool `json:"run_towards,omitempty"`
}

// Person is one placed human.
type Person struct {
	ID      string      `json:"id"`
	Number  int         `json:"number"`
	Flags   PersonFlags `json:"flags"`
	X       float64     `json:"x"`
	Y       float64     `json:"y"`
	Z       int         `json:"z"`
	Message string      `json:"message,omitempty"`
	Heading *int        `json:"heading,omitempty"`
}

// FormatCoord prints a coordinate the way the game files carry them:
// shortest representation, whole numbers keep a ".0".
func FormatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eN") {
		s += ".0"
	}
	return s
}
