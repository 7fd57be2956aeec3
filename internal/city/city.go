// Package city places premodeled buildings over three concentric zones.
package city

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"sar2tools/internal/config"
	"sar2tools/internal/logging"
	"sar2tools/internal/scenery"
)

// Summary counts the structures placed per zone.
type Summary struct {
	Total   int
	PerZone map[scenery.Zone]int
}

// Generator sweeps each zone row by row, dropping a building on every
// cell that lies in the zone being swept and passes the density trial.
type Generator struct {
	cfg config.CityConfig
	rng *rand.Rand
	ids io.Reader
}

// New returns a Generator drawing from rng. IDs come from a separate
// stream seeded off rng so that they never shift the placement samples.
func New(cfg config.CityConfig, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng, ids: rand.New(rand.NewSource(rng.Int63()))}
}

// ZoneAt returns the innermost zone containing (x, y).
func ZoneAt(zones config.Zones, x, y int) (scenery.Zone, bool) {
	for _, z := range scenery.Zones {
		if zones.Get(z).Bounds.Contains(x, y) {
			return z, true
		}
	}
	return 0, false
}

func (g *Generator) bounded(b config.Bounds) int {
	if b.Max <= b.Min {
		return b.Min
	}
	return g.rng.Intn(b.Max-b.Min) + b.Min
}

func (g *Generator) pick(list []string) string {
	return list[g.rng.Intn(len(list))]
}

// build is a Bernoulli trial: density 1 always builds, 0 never does.
func (g *Generator) build(density float64) bool {
	return g.rng.Float64() < density
}

func (g *Generator) heading(r config.Rotation) *int {
	switch r.Mode {
	case config.RotateRandom:
		h := g.rng.Intn(360)
		return &h
	case config.RotateFixed:
		h := r.Heading
		return &h
	}
	return nil
}

// Generate writes the outskirts, city and center sweeps to w.
func (g *Generator) Generate(ctx context.Context, w scenery.Writer) (Summary, error) {
	log := logging.FromContext(ctx).With("component", "city")
	sum := Summary{PerZone: map[scenery.Zone]int{}}
	for _, zone := range scenery.SweepOrder {
		if err := w.WriteComment(scenery.Comment{Text: "#" + strings.ToUpper(zone.String()), Spaced: true}); err != nil {
			return sum, err
		}
		n, err := g.sweep(ctx, zone, w)
		sum.PerZone[zone] = n
		sum.Total += n
		if err != nil {
			return sum, fmt.Errorf("sweep %s: %w", zone, err)
		}
		log.Debug("zone done", "zone", zone.String(), "structures", n)
	}
	log.Info("city generated", "structures", sum.Total)
	return sum, nil
}

func (g *Generator) sweep(ctx context.Context, zone scenery.Zone, w scenery.Writer) (int, error) {
	zc := g.cfg.Zones.Get(zone)
	placed := 0
	for y := zc.Bounds.Bottom; y < zc.Bounds.Top; {
		if err := ctx.Err(); err != nil {
			return placed, err
		}
		maxWidth := 0
		for x := zc.Bounds.Left; x < zc.Bounds.Right; {
			length := g.bounded(zc.Length)
			street := g.bounded(zc.Street)
			if at, ok := ZoneAt(g.cfg.Zones, x, y); ok && at == zone && g.build(zc.Density) {
				s := scenery.Structure{
					Zone:   zone,
					Length: length,
					Width:  g.bounded(zc.Width),
				}
				s.Height = g.bounded(zc.Height)
				s.Range = g.bounded(zc.Range)
				s.DayTexture = g.pick(g.cfg.DayTextures)
				s.NightTexture = g.pick(g.cfg.NightTextures)
				s.RoofTexture = g.cfg.RoofTexture
				s.X = x + length/2
				s.Y = y + s.Width/2
				s.Z = g.cfg.Ground
				s.Heading = g.heading(zc.Rotate)
				id, err := uuid.NewRandomFromReader(g.ids)
				if err != nil {
					return placed, err
				}
				s.ID = id.String()
				if err := w.WriteStructure(s); err != nil {
					return placed, err
				}
				placed++
				maxWidth = max(maxWidth, s.Width)
			}
			x += length + street
		}
		y += g.bounded(zc.Street) + maxWidth
	}
	return placed, nil
}
