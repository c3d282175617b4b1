package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRayUnitDirection(t *testing.T) {
	angles := []float64{0, math.Pi / 4, math.Pi / 2, math.Pi, 3 * math.Pi / 2, 5.5}
	for _, angle := range angles {
		r := NewRay(Point{X: 3, Y: 7}, angle)
		assert.InDelta(t, 1.0, math.Hypot(r.Dir.X, r.Dir.Y), 1e-12,
			"direction for angle %g must be unit length", angle)
	}
}

func TestCastHorizontalRayHitsVerticalWall(t *testing.T) {
	r := NewRay(Point{X: 0, Y: 0}, 0)
	wall := Seg(10, -5, 10, 5)

	hit, ok := r.Cast(wall)
	assert.True(t, ok)
	assert.Equal(t, 10.0, hit.Point.X)
	assert.Equal(t, 0.0, hit.Point.Y)
	assert.Equal(t, 10.0, hit.Distance)
}

func TestCastParallelSegmentNoHit(t *testing.T) {
	// Ray along +x, horizontal non-collinear wall: determinant is exactly
	// zero and the result is a defined no-hit.
	r := NewRay(Point{X: 0, Y: 0}, 0)
	wall := Seg(2, 5, 20, 5)

	_, ok := r.Cast(wall)
	assert.False(t, ok)
}

func TestCastBehindOriginNoHit(t *testing.T) {
	r := NewRay(Point{X: 0, Y: 0}, 0)
	wall := Seg(-10, -5, -10, 5)

	_, ok := r.Cast(wall)
	assert.False(t, ok)
}

func TestCastOutsideSpanNoHit(t *testing.T) {
	// Wall ends above the ray's path; the infinite lines cross but the
	// segment parameter falls outside [0,1].
	r := NewRay(Point{X: 0, Y: 0}, 0)
	wall := Seg(10, 1, 10, 5)

	_, ok := r.Cast(wall)
	assert.False(t, ok)
}

func TestCastExactEndpointCounts(t *testing.T) {
	// Closed span bounds: a crossing exactly at a wall endpoint is a hit.
	r := NewRay(Point{X: 0, Y: 0}, 0)
	wall := Seg(10, 0, 10, 5)

	hit, ok := r.Cast(wall)
	assert.True(t, ok)
	assert.Equal(t, Point{X: 10, Y: 0}, hit.Point)
	assert.Equal(t, 10.0, hit.Distance)
}

func TestCastDiagonal(t *testing.T) {
	r := NewRay(Point{X: 0, Y: 0}, math.Pi/4)
	wall := Seg(0, 10, 10, 0)

	hit, ok := r.Cast(wall)
	assert.True(t, ok)
	assert.InDelta(t, 5.0, hit.Point.X, 1e-9)
	assert.InDelta(t, 5.0, hit.Point.Y, 1e-9)
	assert.InDelta(t, 5*math.Sqrt2, hit.Distance, 1e-9)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4}))
	assert.Equal(t, 0.0, Distance(Point{X: 2, Y: 2}, Point{X: 2, Y: 2}))
}

func TestPointOnSegment(t *testing.T) {
	wall := Seg(0, 0, 10, 10)

	assert.True(t, PointOnSegment(Point{X: 5, Y: 5}, wall))
	assert.True(t, PointOnSegment(Point{X: 0, Y: 0}, wall), "endpoints lie on the segment")
	assert.True(t, PointOnSegment(Point{X: 10, Y: 10}, wall))

	assert.False(t, PointOnSegment(Point{X: 5, Y: 6}, wall), "off the line")
	assert.False(t, PointOnSegment(Point{X: 11, Y: 11}, wall), "collinear but past the endpoint")
	assert.False(t, PointOnSegment(Point{X: -1, Y: -1}, wall))
}

func TestPointOnVerticalSegment(t *testing.T) {
	wall := Seg(300, 100, 300, 300)

	assert.True(t, PointOnSegment(Point{X: 300, Y: 200}, wall))
	assert.False(t, PointOnSegment(Point{X: 300, Y: 301}, wall))
	assert.False(t, PointOnSegment(Point{X: 299, Y: 200}, wall))
}
