// Package geom provides the 2D primitives and the ray-segment intersection
// solver used by the visibility engine.
package geom

import "math"

// Point represents a 2D position in surface space.
type Point struct {
	X, Y float64
}

// Segment represents a wall obstacle defined by its two endpoints.
// Segments are immutable once constructed.
type Segment struct {
	A, B Point
}

// Seg is a convenience constructor for a Segment from raw coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Point{X: x1, Y: y1}, B: Point{X: x2, Y: y2}}
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PointOnSegment reports whether p lies exactly on the segment s.
// Collinearity is tested with an exact cross-product comparison, then the
// point is confined to the segment's bounding box.
func PointOnSegment(p Point, s Segment) bool {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	cross := (p.X-s.A.X)*dy - (p.Y-s.A.Y)*dx
	if math.Abs(cross) > 0 {
		return false
	}

	minX := math.Min(s.A.X, s.B.X)
	maxX := math.Max(s.A.X, s.B.X)
	minY := math.Min(s.A.Y, s.B.Y)
	maxY := math.Max(s.A.Y, s.B.Y)

	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}
