// Package caster implements the radial sampling pass: a dense fan of rays
// swept through one full turn, each resolved to its nearest wall hit.
package caster

import (
	"math"

	"github.com/chosenlight/lumen/internal/geom"
	"github.com/chosenlight/lumen/internal/scene"
)

// Sample is the result for one sampled direction. OK is false when no wall
// was hit in that direction; Hit is meaningful only when OK is true.
type Sample struct {
	Angle float64 // radians
	Hit   geom.Hit
	OK    bool
}

// Caster sweeps rays radially from an origin against a fixed scene.
type Caster struct {
	scene        *scene.Scene
	angleStepRad float64
	numRays      int
}

// New builds a caster for the given scene and angular step in degrees.
// The step must be positive and divide evenly into 360; config validation
// enforces this before a caster is ever constructed.
func New(sc *scene.Scene, angleStepDeg float64) *Caster {
	return &Caster{
		scene:        sc,
		angleStepRad: angleStepDeg * math.Pi / 180.0,
		numRays:      int(math.Round(360.0 / angleStepDeg)),
	}
}

// NumRays returns the number of directions sampled per sweep.
func (c *Caster) NumRays() int {
	return c.numRays
}

// Sweep samples every direction from the origin and returns the nearest hit
// for each, in increasing angle order starting at 0. Walls are tested in the
// scene's stored order; ties on exactly equal distances go to the first wall
// seen, since comparison is strict.
//
// If the origin lies exactly on any wall the whole sweep is abandoned and
// Sweep returns (nil, false). The check runs once per sweep, not inside the
// per-ray loop.
func (c *Caster) Sweep(origin geom.Point) ([]Sample, bool) {
	if c.scene.ContainsPoint(origin) {
		return nil, false
	}

	walls := c.scene.Walls()
	samples := make([]Sample, 0, c.numRays)
	for i := 0; i < c.numRays; i++ {
		angle := float64(i) * c.angleStepRad
		ray := geom.NewRay(origin, angle)

		var nearest geom.Hit
		found := false
		for _, wall := range walls {
			hit, ok := ray.Cast(wall)
			if !ok {
				continue
			}
			if !found || hit.Distance < nearest.Distance {
				nearest = hit
				found = true
			}
		}

		samples = append(samples, Sample{Angle: angle, Hit: nearest, OK: found})
	}
	return samples, true
}
