// Package crowd scatters people over a regular grid.
package crowd

import (
	"context"
	"io"
	"math"
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"sar2tools/internal/config"
	"sar2tools/internal/logging"
	"sar2tools/internal/scenery"
)

// Banner comments framing a crowd.
const (
	StartBanner = "##### CROWD #####"
	EndBanner   = "####### END CROWD #######"
)

// Generator places people on a grid of Space spacing, each grid point
// being taken with probability Density until MaxPeople are placed.
type Generator struct {
	cfg config.CrowdConfig
	rng *rand.Rand
	ids io.Reader
}

// New returns a Generator drawing from rng.
func New(cfg config.CrowdConfig, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng, ids: rand.New(rand.NewSource(rng.Int63()))}
}

func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

// deviation is a signed jitter in hundredths, strictly below MaxDeviation.
func (g *Generator) deviation() float64 {
	positive := g.chance(0.5)
	steps := int(math.Round(g.cfg.MaxDeviation * 100))
	dev := 0.0
	if steps > 0 {
		dev = float64(g.rng.Intn(steps)) / 100
	}
	if positive {
		return dev
	}
	return -dev
}

func (g *Generator) flags() scenery.PersonFlags {
	odds := g.cfg.Flags
	return scenery.PersonFlags{
		NeedRescue:  g.chance(odds.NeedRescue),
		Alert:       g.chance(odds.Alert),
		Aware:       g.chance(odds.Aware),
		OnStretcher: g.chance(odds.OnStretcher),
		RunTowards:  g.chance(odds.RunTowards),
	}
}

func (g *Generator) heading() *int {
	switch g.cfg.Rotate.Mode {
	case config.RotateRandom:
		h := g.rng.Intn(360)
		return &h
	case config.RotateFixed:
		h := g.cfg.Rotate.Heading
		return &h
	}
	return nil
}

func (g *Generator) message() string {
	if len(g.cfg.EnterMessages) == 0 {
		return ""
	}
	return g.cfg.EnterMessages[g.rng.Intn(len(g.cfg.EnterMessages))]
}

// Generate writes the crowd to w and returns the number of people placed.
// The cap is checked before every grid point, so a MaxPeople of zero
// writes only the banners.
func (g *Generator) Generate(ctx context.Context, w scenery.Writer) (int, error) {
	log := logging.FromContext(ctx).With("component", "crowd")
	if err := w.WriteComment(scenery.Comment{Text: StartBanner}); err != nil {
		return 0, err
	}
	a := g.cfg.Area
	total := 0
	for y := a.Bottom; y < a.Top && total < g.cfg.MaxPeople; y += g.cfg.Space {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		for x := a.Left; x < a.Right && total < g.cfg.MaxPeople; x += g.cfg.Space {
			if !g.chance(g.cfg.Density) {
				continue
			}
			p := scenery.Person{Number: total}
			p.X = x + g.deviation()
			p.Y = y + g.deviation()
			p.Z = g.cfg.Ground
			p.Flags = g.flags()
			p.Heading = g.heading()
			if p.Flags.NeedRescue {
				p.Message = g.message()
			}
			id, err := uuid.NewRandomFromReader(g.ids)
			if err != nil {
				return total, err
			}
			p.ID = id.String()
			if err := w.WriteComment(scenery.Comment{Text: "#PERSON #" + strconv.Itoa(total)}); err != nil {
				return total, err
			}
			if err := w.WritePerson(p); err != nil {
				return total, err
			}
			total++
		}
	}
	if err := w.WriteComment(scenery.Comment{Text: EndBanner}); err != nil {
		return total, err
	}
	log.Info("crowd generated", "people", total)
	return total, nil
}
