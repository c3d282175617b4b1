package render

import (
	"image/color"
	"math"

	"github.com/chosenlight/lumen/internal/caster"
	"github.com/chosenlight/lumen/internal/config"
	"github.com/chosenlight/lumen/internal/geom"
	"github.com/chosenlight/lumen/internal/scene"
)

// Shader paints sampled rays with distance-based attenuation and draws the
// walls on top of the ray field.
type Shader struct {
	decayK    float64
	stepSize  float64
	maxLength float64
	rayColor  color.RGBA
	wallColor color.RGBA
	mode      string
}

// NewShader builds a shader from a validated config.
func NewShader(cfg *config.Config) *Shader {
	return &Shader{
		decayK:    cfg.DecayK,
		stepSize:  cfg.StepSize,
		maxLength: cfg.MaxRayLength,
		rayColor:  cfg.RayRGBA(),
		wallColor: cfg.WallRGBA(),
		mode:      cfg.RenderMode,
	}
}

// Attenuation returns the opacity factor at distance d, exp(-k*d) clamped
// to [0, 1].
func (s *Shader) Attenuation(d float64) float64 {
	att := math.Exp(-s.decayK * d)
	return math.Max(0, math.Min(1, att))
}

// AlphaAt converts the attenuation at distance d to an 8-bit alpha. The
// conversion truncates, so alpha hits 0 once exp(-k*d)*255 drops below 1,
// at d = ln(255)/k.
func (s *Shader) AlphaAt(d float64) uint8 {
	return uint8(s.Attenuation(d) * 255.0)
}

// RenderField paints one frame's ray field: every sampled direction, each
// terminated at its nearest hit or at the configured maximum length.
func (s *Shader) RenderField(p *Painter, origin geom.Point, samples []caster.Sample) {
	for _, sample := range samples {
		dist := s.maxLength
		if sample.OK {
			dist = sample.Hit.Distance
		}
		if s.mode == config.ModeLine {
			s.lineRay(p, origin, sample.Angle, dist)
		} else {
			s.marchRay(p, origin, sample.Angle, dist)
		}
	}
}

// marchRay steps along the ray in fixed increments, writing one attenuated
// sample per step. The march ends at the hit distance, at the alpha cutoff
// (attenuation is strictly decreasing, so nothing past it would be visible),
// or at the surface edge.
func (s *Shader) marchRay(p *Painter, origin geom.Point, angle, distance float64) {
	stepX := math.Cos(angle) * s.stepSize
	stepY := math.Sin(angle) * s.stepSize
	x, y := origin.X, origin.Y

	for d := 0.0; d <= distance; d += s.stepSize {
		alpha := s.AlphaAt(d)
		if alpha == 0 {
			break
		}

		drawX, drawY := int(x), int(y)
		if !p.InBounds(drawX, drawY) {
			break
		}

		p.Set(drawX, drawY, modulate(s.rayColor, alpha))
		x += stepX
		y += stepY
	}
}

// lineRay draws the whole ray as one vector line at full alpha. Cheaper than
// marching but without the per-pixel falloff.
func (s *Shader) lineRay(p *Painter, origin geom.Point, angle, distance float64) {
	endX := origin.X + math.Cos(angle)*distance
	endY := origin.Y + math.Sin(angle)*distance
	p.Line(int(origin.X), int(origin.Y), int(endX), int(endY), s.rayColor)
}

// DrawWalls renders every wall as an opaque line, on top of the ray field.
func (s *Shader) DrawWalls(p *Painter, sc *scene.Scene) {
	for _, wall := range sc.Walls() {
		p.Line(int(wall.A.X), int(wall.A.Y), int(wall.B.X), int(wall.B.Y), s.wallColor)
	}
}

// modulate scales an opaque color by an 8-bit alpha. The canvas composites
// onto opaque black, so pre-scaling the channels is equivalent to alpha
// blending the ray over the backdrop.
func modulate(clr color.RGBA, alpha uint8) color.RGBA {
	a := uint32(alpha)
	return color.RGBA{
		R: uint8(uint32(clr.R) * a / 255),
		G: uint8(uint32(clr.G) * a / 255),
		B: uint8(uint32(clr.B) * a / 255),
		A: 255,
	}
}
