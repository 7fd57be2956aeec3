// CUE schema validation and semantic checks
package config

import (
	_ "embed"
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/encoding/yaml"

	"sar2tools/internal/scenery"
)

//go:embed schema.cue
var schemaSource []byte

// Schema definitions in schema.cue.
const (
	CitySchema  = "#City"
	CrowdSchema = "#Crowd"
)

// ValidateWithCue checks YAML bytes against a definition of the embedded
// CUE schema. Definitions are closed, so unknown keys are rejected.
func ValidateWithCue(yamlBytes []byte, definition string) error {
	ctx := cuecontext.New()
	schema := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath(definition))
	if !def.Exists() {
		return fmt.Errorf("schema has no definition %s", definition)
	}
	if err := yaml.Validate(yamlBytes, def); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func checkBounds(name string, b Bounds) error {
	if b.Min < 0 || b.Max < b.Min {
		return fmt.Errorf("%s: bounds [%d,%d) are inverted or negative", name, b.Min, b.Max)
	}
	return nil
}

func checkProb(name string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s: probability %v outside [0,1]", name, p)
	}
	return nil
}

func checkRotation(name string, r Rotation) error {
	switch r.Mode {
	case RotateNone, RotateRandom:
		return nil
	case RotateFixed:
		if r.Heading < 0 || r.Heading >= 360 {
			return fmt.Errorf("%s: heading %d outside [0,360)", name, r.Heading)
		}
		return nil
	}
	return fmt.Errorf("%s: unknown rotate mode %q", name, r.Mode)
}

// Validate reports every problem that would make the city generator
// misbehave or never terminate.
func (c CityConfig) Validate() error {
	var errs []error
	if len(c.DayTextures) == 0 || len(c.NightTextures) == 0 {
		errs = append(errs, errors.New("day and night texture lists must not be empty"))
	}
	for _, z := range scenery.Zones {
		zc := c.Zones.Get(z)
		name := z.String()
		if zc.Bounds.Right < zc.Bounds.Left || zc.Bounds.Top < zc.Bounds.Bottom {
			errs = append(errs, fmt.Errorf("%s: bounds are inverted", name))
		}
		errs = append(errs,
			checkProb(name+".density", zc.Density),
			checkBounds(name+".range", zc.Range),
			checkBounds(name+".street", zc.Street),
			checkBounds(name+".height", zc.Height),
			checkBounds(name+".width", zc.Width),
			checkBounds(name+".length", zc.Length),
			checkRotation(name+".rotate", zc.Rotate),
		)
		if zc.Street.Min < 1 {
			errs = append(errs, fmt.Errorf("%s.street: minimum must be at least 1", name))
		}
	}
	return errors.Join(errs...)
}

// Validate reports every problem that would make the crowd generator
// misbehave or never terminate.
func (c CrowdConfig) Validate() error {
	var errs []error
	if c.Area.Right < c.Area.Left || c.Area.Top < c.Area.Bottom {
		errs = append(errs, errors.New("area: bounds are inverted"))
	}
	if c.MaxPeople < 0 {
		errs = append(errs, fmt.Errorf("max_people: %d is negative", c.MaxPeople))
	}
	if c.Space <= 0 {
		errs = append(errs, fmt.Errorf("space: %v must be positive", c.Space))
	}
	if c.MaxDeviation < 0 {
		errs = append(errs, fmt.Errorf("max_deviation: %v is negative", c.MaxDeviation))
	}
	errs = append(errs,
		checkProb("density", c.Density),
		checkProb("flags.need_rescue", c.Flags.NeedRescue),
		checkProb("flags.alert", c.Flags.Alert),
		checkProb("flags.aware", c.Flags.Aware),
		checkProb("flags.on_stretcher", c.Flags.OnStretcher),
		checkProb("flags.run_towards", c.Flags.RunTowards),
		checkRotation("rotate", c.Rotate),
	)
	if c.Flags.NeedRescue > 0 && len(c.EnterMessages) == 0 {
		errs = append(errs, errors.New("enter_messages: required when need_rescue can be set"))
	}
	return errors.Join(errs...)
}
