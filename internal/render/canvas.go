// Package render rasterizes the ray field and the walls into an RGBA pixel
// buffer that the presentation layer uploads to the screen.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Canvas owns the frame's backing pixel buffer. The buffer is only writable
// through a scoped Frame call so it is always released before the next
// frame's acquisition, whatever path the render pass exits through.
type Canvas struct {
	width  int
	height int
	pix    []byte
	inUse  bool
}

// NewCanvas allocates a canvas for the given surface dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

// Frame acquires the pixel buffer for one frame, clears it to opaque black,
// runs fn with a painter scoped to the buffer, and releases the buffer on
// every exit path. It returns an error if the buffer is already held, in
// which case fn is not called and the frame should be skipped.
func (c *Canvas) Frame(fn func(*Painter)) error {
	if c.inUse {
		return fmt.Errorf("canvas %dx%d is already acquired", c.width, c.height)
	}
	c.inUse = true
	defer func() { c.inUse = false }()

	p := &Painter{canvas: c}
	p.clear()
	fn(p)
	return nil
}

// Pix returns the RGBA buffer, row-major, for presentation. It must not be
// written outside a Frame call.
func (c *Canvas) Pix() []byte {
	return c.pix
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Image wraps the buffer in an image.RGBA sharing the same pixels. Used by
// the offline snapshot tool to hand the frame to the image pipeline.
func (c *Canvas) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    c.pix,
		Stride: c.width * 4,
		Rect:   image.Rect(0, 0, c.width, c.height),
	}
}

// Painter is a frame-scoped view of the canvas buffer. It is only valid
// inside the Frame callback that produced it.
type Painter struct {
	canvas *Canvas
}

// Size returns the drawable dimensions in pixels.
func (p *Painter) Size() (int, int) {
	return p.canvas.width, p.canvas.height
}

// InBounds reports whether the pixel coordinate lies on the surface.
func (p *Painter) InBounds(x, y int) bool {
	return x >= 0 && x < p.canvas.width && y >= 0 && y < p.canvas.height
}

// Set writes one opaque pixel. Out-of-bounds writes are ignored.
func (p *Painter) Set(x, y int, clr color.RGBA) {
	if !p.InBounds(x, y) {
		return
	}
	base := (y*p.canvas.width + x) * 4
	p.canvas.pix[base] = clr.R
	p.canvas.pix[base+1] = clr.G
	p.canvas.pix[base+2] = clr.B
	p.canvas.pix[base+3] = 255
}

// Line plots a line segment using Bresenham's integer algorithm, skipping
// pixels that fall outside the surface.
func (p *Painter) Line(x0, y0, x1, y1 int, clr color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		p.Set(x0, y0, clr)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clear resets every pixel to opaque black.
func (p *Painter) clear() {
	pix := p.canvas.pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = 0
		pix[i+1] = 0
		pix[i+2] = 0
		pix[i+3] = 255
	}
}
