// Package game wires the visibility engine into the ebiten game loop: one
// sweep and one render pass per frame, origin driven by the cursor.
package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/chosenlight/lumen/internal/caster"
	"github.com/chosenlight/lumen/internal/config"
	"github.com/chosenlight/lumen/internal/geom"
	"github.com/chosenlight/lumen/internal/render"
	"github.com/chosenlight/lumen/internal/scene"
)

// Game holds the engine state for the interactive viewer. The scene and all
// parameters are fixed at construction; only the origin changes frame to
// frame.
type Game struct {
	cfg    *config.Config
	scene  *scene.Scene
	caster *caster.Caster
	shader *render.Shader
	canvas *render.Canvas
	debug  bool

	origin geom.Point

	// Per-frame stats for the debug overlay.
	lastSweep   time.Duration
	lastAborted bool
}

// New builds the viewer for a validated config and a loaded scene.
func New(cfg *config.Config, sc *scene.Scene, debug bool) *Game {
	return &Game{
		cfg:    cfg,
		scene:  sc,
		caster: caster.New(sc, cfg.AngleStepDeg),
		shader: render.NewShader(cfg),
		canvas: render.NewCanvas(cfg.Width, cfg.Height),
		debug:  debug,
	}
}

// Update samples the cursor as the ray origin for the next frame.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	x, y := ebiten.CursorPosition()
	g.origin = geom.Point{X: float64(x), Y: float64(y)}
	return nil
}

// Draw runs one full frame: sweep the scene from the current origin, paint
// the attenuated ray field, then the walls on top, and present the buffer.
// If the canvas cannot be acquired the frame is logged and skipped; the next
// frame starts clean.
func (g *Game) Draw(screen *ebiten.Image) {
	origin := g.origin
	err := g.canvas.Frame(func(p *render.Painter) {
		start := time.Now()
		samples, ok := g.caster.Sweep(origin)
		g.lastSweep = time.Since(start)
		g.lastAborted = !ok
		if ok {
			g.shader.RenderField(p, origin, samples)
		}
		g.shader.DrawWalls(p, g.scene)
	})
	if err != nil {
		log.Printf("frame skipped: %v", err)
		return
	}

	screen.WritePixels(g.canvas.Pix())

	if g.debug {
		msg := fmt.Sprintf("FPS: %.1f\nRays: %d x %d walls\nSweep: %.2f ms",
			ebiten.ActualFPS(), g.caster.NumRays(), g.scene.Len(),
			g.lastSweep.Seconds()*1000)
		if g.lastAborted {
			msg += "\nSweep aborted: origin on wall"
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical screen size used by ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
