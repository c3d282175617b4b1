// Package scene holds the wall obstacles that occlude rays. A Scene is built
// once at startup and is read-only for the lifetime of the process.
package scene

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chosenlight/lumen/internal/geom"
)

// Scene is an ordered collection of wall segments. Order does not affect
// results but is fixed so iteration is deterministic.
type Scene struct {
	walls []geom.Segment
}

// New builds a scene from the given walls. The slice is copied so callers
// cannot mutate the scene afterwards.
func New(walls []geom.Segment) *Scene {
	s := &Scene{walls: make([]geom.Segment, len(walls))}
	copy(s.walls, walls)
	return s
}

// Walls returns the scene's walls in their stored order. Callers must treat
// the slice as read-only.
func (s *Scene) Walls() []geom.Segment {
	return s.walls
}

// Len returns the number of walls in the scene.
func (s *Scene) Len() int {
	return len(s.walls)
}

// ContainsPoint reports whether p lies exactly on any wall in the scene.
// The radial sampler uses this as its degenerate-origin guard.
func (s *Scene) ContainsPoint(p geom.Point) bool {
	for _, wall := range s.walls {
		if geom.PointOnSegment(p, wall) {
			return true
		}
	}
	return false
}

// Default returns the built-in demo scene.
func Default() *Scene {
	return New([]geom.Segment{
		geom.Seg(400, 400, 500, 500),
		geom.Seg(300, 100, 300, 300),
		geom.Seg(500, 600, 400, 500),
		geom.Seg(300, 300, 100, 300),
		geom.Seg(100, 300, 100, 100),
		geom.Seg(600, 150, 600, 450),
		geom.Seg(200, 450, 200, 150),
	})
}

// sceneFile is the on-disk YAML representation: a list of walls, each a
// four-element [x1, y1, x2, y2] row in surface coordinates.
type sceneFile struct {
	Walls [][4]float64 `yaml:"walls"`
}

// Load reads a scene from a YAML file. A missing file is not an error: the
// default scene is returned so the viewer can run without any data files.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}

	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	walls := make([]geom.Segment, 0, len(file.Walls))
	for i, row := range file.Walls {
		wall := geom.Seg(row[0], row[1], row[2], row[3])
		if err := validateWall(wall); err != nil {
			return nil, fmt.Errorf("invalid wall %d in %s: %w", i, path, err)
		}
		walls = append(walls, wall)
	}

	return New(walls), nil
}

// validateWall rejects degenerate walls that would never produce a hit or
// would poison the intersection math.
func validateWall(wall geom.Segment) error {
	for _, v := range []float64{wall.A.X, wall.A.Y, wall.B.X, wall.B.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite coordinate %v", v)
		}
	}
	if wall.A == wall.B {
		return fmt.Errorf("zero-length wall at (%g, %g)", wall.A.X, wall.A.Y)
	}
	return nil
}
