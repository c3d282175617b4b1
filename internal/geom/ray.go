package geom

import "math"

// Ray is a half-line anchored at an origin with a unit-length direction.
type Ray struct {
	Origin Point
	Dir    Point
}

// NewRay constructs a ray from an origin and an angle in radians.
// The direction is (cos angle, sin angle), unit length by construction.
func NewRay(origin Point, angle float64) Ray {
	return Ray{
		Origin: origin,
		Dir:    Point{X: math.Cos(angle), Y: math.Sin(angle)},
	}
}

// Hit is a valid intersection between a ray and a wall segment.
type Hit struct {
	Point    Point
	Distance float64
}

// Cast intersects the ray with a wall segment and returns the hit point and
// its forward distance from the ray origin. The second return value is false
// when there is no valid intersection.
//
// The ray is treated as an infinite line through Origin and a second point
// one unit along Dir; the wall is parameterized by t in [0,1] between its
// endpoints and the ray by u >= 0. Both bounds are closed, so exact endpoint
// hits count. A zero determinant means parallel or collinear lines and is a
// defined no-hit, compared exactly with no epsilon.
func (r Ray) Cast(wall Segment) (Hit, bool) {
	x1, y1 := wall.A.X, wall.A.Y
	x2, y2 := wall.B.X, wall.B.Y
	x3, y3 := r.Origin.X, r.Origin.Y
	x4, y4 := r.Origin.X+r.Dir.X, r.Origin.Y+r.Dir.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		return Hit{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / den

	if t < 0 || t > 1 || u < 0 {
		return Hit{}, false
	}

	p := Point{
		X: x1 + t*(x2-x1),
		Y: y1 + t*(y2-y1),
	}
	return Hit{Point: p, Distance: Distance(r.Origin, p)}, true
}
